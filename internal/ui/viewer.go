package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ovenreader/internal/models"
)

// Viewer shows one cook record on a terminal screen
type Viewer struct {
	Record     models.CookRecord
	View       ViewType
	ShowHelp   bool
	SparkWidth int
}

// HandleEvent applies a terminal event and reports whether to quit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return true
		}
		if ev.Key() == tcell.KeyTab {
			v.View = (v.View + 1) % ViewCount
		}
		if ev.Key() == tcell.KeyBacktab {
			v.View = (v.View + ViewCount - 1) % ViewCount
		}
		if ev.Rune() == 'h' || ev.Rune() == 'H' || ev.Rune() == '?' {
			v.ShowHelp = !v.ShowHelp
		}
		// Number key shortcuts for quick view switching
		if r := ev.Rune(); r >= '1' && r < '1'+rune(ViewCount) {
			v.View = ViewType(r - '1')
		}
	}
	return false
}

// Run draws the record and processes events on screen until the user
// quits or ctx is cancelled. The caller owns screen initialisation.
func (v *Viewer) Run(ctx context.Context, screen tcell.Screen) error {
	eventChan := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	Draw(screen, v.Record, v.View, v.ShowHelp, v.SparkWidth)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if v.HandleEvent(ev) {
				return nil
			}
			Draw(screen, v.Record, v.View, v.ShowHelp, v.SparkWidth)
		}
	}
}

// Show opens the terminal, runs the viewer and restores the terminal
func Show(ctx context.Context, v *Viewer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.Clear()
	return v.Run(ctx, screen)
}
