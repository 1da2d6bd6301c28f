package parser

// AwaitingStageHandler handles events while a stage is open
type AwaitingStageHandler struct{}

func (h *AwaitingStageHandler) Name() string {
	return "AwaitingStage"
}

func (h *AwaitingStageHandler) Enter(ctx *ParserContext) {
	// Nothing special needed
}

func (h *AwaitingStageHandler) ProcessEvent(ctx *ParserContext, ev StageEvent) (ParserState, error) {
	switch ev.Kind {
	case EventStart:
		temps, err := ExtractTemperatures(ev.TempTokens)
		if err != nil {
			return StateAwaitingStage, lineErr(ev.Line, err, "start temperatures")
		}
		ctx.StartTemps = temps
		return StateAwaitingStage, nil

	case EventEnd:
		if _, err := ctx.closeStage(ev); err != nil {
			return StateAwaitingStage, err
		}
		temps, err := ExtractTemperatures(ev.TempTokens)
		if err != nil {
			return StateAwaitingStage, lineErr(ev.Line, err, "end temperatures")
		}
		ctx.EndTemps = temps
		return StateEnded, nil

	case EventStageMarker:
		// Duplicate or out-of-order markers do not move the accumulator
		if ev.Marker <= ctx.StageIndex {
			return StateAwaitingStage, nil
		}
		if ev.Marker > ctx.StageIndex+1 {
			ctx.Logger.Debug("stage marker skips ahead",
				"line", ev.Line+1,
				"current", ctx.StageIndex,
				"marker", ev.Marker)
		}
		clock, err := ctx.closeStage(ev)
		if err != nil {
			return StateAwaitingStage, err
		}
		ctx.Counter = clock
		// One step per boundary, however far the marker jumps
		ctx.StageIndex++
		return StateAwaitingStage, nil
	}

	return StateAwaitingStage, nil
}

func (h *AwaitingStageHandler) Exit(ctx *ParserContext) {
	// Nothing special needed
}
