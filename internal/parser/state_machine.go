package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ovenreader/internal/models"
)

// ParserState represents the current state of the stage accumulator
type ParserState int

const (
	StateAwaitingStage ParserState = iota
	StateEnded
)

// String returns a human-readable representation of the parser state
func (s ParserState) String() string {
	switch s {
	case StateAwaitingStage:
		return "AwaitingStage"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// EventKind is what a stage-data line's marker field announces
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventStageMarker
)

// String returns a human-readable representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventEnd:
		return "End"
	case EventStageMarker:
		return "StageMarker"
	default:
		return "Unknown"
	}
}

const (
	clockField  = 0
	markerField = 2

	markerStart = "START"
	markerEnd   = "END"

	clockLayout = "15:04"
)

// StageEvent is one stage-data line decoded into an accumulator input.
// The clock is kept raw and parsed only by transitions that need it.
type StageEvent struct {
	Line       int // 0-based line index
	Kind       EventKind
	Marker     int
	Clock      string
	TempTokens []string
}

// NewStageEvent decodes a stage-data line
func NewStageEvent(index int, line string) (StageEvent, error) {
	fields := SplitFields(line)
	if len(fields) <= markerField {
		return StageEvent{}, lineErr(index, ErrMalformedStage, "expected at least %d fields, got %d", markerField+1, len(fields))
	}

	ev := StageEvent{
		Line:       index,
		Clock:      fields[clockField],
		TempTokens: temperatureTokens(fields),
	}

	switch marker := fields[markerField]; marker {
	case markerStart:
		ev.Kind = EventStart
	case markerEnd:
		ev.Kind = EventEnd
	default:
		n, err := strconv.Atoi(strings.TrimSpace(marker))
		if err != nil {
			return StageEvent{}, lineErr(index, ErrMalformedStage, "%q is not START, END or a stage number", marker)
		}
		ev.Kind = EventStageMarker
		ev.Marker = n
	}
	return ev, nil
}

// ParserContext holds the accumulator data for a single parse
type ParserContext struct {
	// Current state
	State ParserState

	// Clock of the last stage boundary and the stage it opened
	Counter    time.Time
	StageIndex int

	Stages     []models.Stage
	StartTemps []float64
	EndTemps   []float64

	Logger *slog.Logger
}

// NewParserContext creates a context positioned at 00:00, stage 1
func NewParserContext(logger *slog.Logger) *ParserContext {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	counter, _ := time.Parse(clockLayout, "00:00")
	return &ParserContext{
		State:      StateAwaitingStage,
		Counter:    counter,
		StageIndex: 1,
		Stages:     make([]models.Stage, 0),
		StartTemps: make([]float64, 0),
		EndTemps:   make([]float64, 0),
		Logger:     logger,
	}
}

// StageLabel names the stage with the given index
func StageLabel(index int) string {
	return fmt.Sprintf("Stage %d", index)
}

// closeStage records the current stage as lasting from Counter to the
// event's clock and returns that clock.
func (ctx *ParserContext) closeStage(ev StageEvent) (time.Time, error) {
	clock, err := time.Parse(clockLayout, strings.TrimSpace(ev.Clock))
	if err != nil {
		return time.Time{}, lineErr(ev.Line, ErrStageTime, "%q is not HH:MM", ev.Clock)
	}
	if clock.Before(ctx.Counter) {
		return time.Time{}, lineErr(ev.Line, ErrStageTime, "%s is earlier than stage boundary %s",
			clock.Format(clockLayout), ctx.Counter.Format(clockLayout))
	}

	minutes := clock.Sub(ctx.Counter).Minutes()
	ctx.Stages = append(ctx.Stages, models.Stage{
		Label:   StageLabel(ctx.StageIndex),
		Minutes: minutes,
	})
	ctx.Logger.Debug("stage closed",
		"line", ev.Line+1,
		"stage", ctx.StageIndex,
		"minutes", minutes)
	return clock, nil
}

// StateHandler interface for handling different accumulator states
type StateHandler interface {
	// ProcessEvent applies an event in this state and returns the next state
	ProcessEvent(ctx *ParserContext, ev StageEvent) (ParserState, error)

	// Enter is called when entering this state
	Enter(ctx *ParserContext)

	// Exit is called when leaving this state
	Exit(ctx *ParserContext)

	// Name returns the name of this state handler
	Name() string
}

// StateMachine manages the accumulator state transitions. A machine
// belongs to exactly one parse.
type StateMachine struct {
	handlers map[ParserState]StateHandler
	context  *ParserContext
}

// NewStateMachine creates a new state machine with all handlers
func NewStateMachine(logger *slog.Logger) *StateMachine {
	ctx := NewParserContext(logger)

	sm := &StateMachine{
		handlers: make(map[ParserState]StateHandler),
		context:  ctx,
	}

	sm.RegisterHandler(StateAwaitingStage, &AwaitingStageHandler{})
	sm.RegisterHandler(StateEnded, &EndedHandler{})

	return sm
}

// RegisterHandler registers a state handler
func (sm *StateMachine) RegisterHandler(state ParserState, handler StateHandler) {
	sm.handlers[state] = handler
}

// ProcessEvent applies one event and manages state transitions
func (sm *StateMachine) ProcessEvent(ev StageEvent) error {
	handler, exists := sm.handlers[sm.context.State]
	if !exists {
		return fmt.Errorf("no handler for state %s", sm.context.State)
	}

	nextState, err := handler.ProcessEvent(sm.context, ev)
	if err != nil {
		return err
	}

	if nextState != sm.context.State {
		return sm.TransitionTo(nextState)
	}
	return nil
}

// TransitionTo transitions to a new state
func (sm *StateMachine) TransitionTo(newState ParserState) error {
	currentHandler, exists := sm.handlers[sm.context.State]
	if exists {
		currentHandler.Exit(sm.context)
	}

	sm.context.Logger.Debug("state transition",
		"from", sm.context.State.String(),
		"to", newState.String())
	sm.context.State = newState

	newHandler, exists := sm.handlers[newState]
	if !exists {
		return fmt.Errorf("no handler for state %s", newState)
	}

	newHandler.Enter(sm.context)
	return nil
}

// GetContext returns the current parser context
func (sm *StateMachine) GetContext() *ParserContext {
	return sm.context
}

// StageResult is what the accumulator hands to the assembler
type StageResult struct {
	Stages     []models.Stage
	StartTemps []float64
	EndTemps   []float64
	Ended      bool
}

// Finalize ends the scan. Input running out is a terminal state just like END.
func (sm *StateMachine) Finalize() StageResult {
	ctx := sm.context
	if ctx.State != StateEnded {
		ctx.Logger.Debug("input ended without END marker", "open_stage", ctx.StageIndex)
	}
	return StageResult{
		Stages:     ctx.Stages,
		StartTemps: ctx.StartTemps,
		EndTemps:   ctx.EndTemps,
		Ended:      ctx.State == StateEnded,
	}
}
