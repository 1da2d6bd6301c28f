package parser

// EndedHandler handles the terminal state reached after END
type EndedHandler struct{}

func (h *EndedHandler) Name() string {
	return "Ended"
}

func (h *EndedHandler) Enter(ctx *ParserContext) {
	ctx.Logger.Debug("cook ended", "stages", len(ctx.Stages))
}

func (h *EndedHandler) ProcessEvent(ctx *ParserContext, ev StageEvent) (ParserState, error) {
	ctx.Logger.Debug("stage data after END ignored",
		"line", ev.Line+1,
		"event", ev.Kind.String())
	return StateEnded, nil
}

func (h *EndedHandler) Exit(ctx *ParserContext) {
	// Terminal state, never left
}
