package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ovenreader/internal/models"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// screenText returns every row of the screen joined by newlines
func screenText(screen tcell.Screen) string {
	width, height := screen.Size()
	var b strings.Builder
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			row.WriteRune(r)
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func testRecord(withYield bool) models.CookRecord {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	fields := models.CookFields{
		FileName:   "404E_PL123456L.txt",
		Product:    "404E",
		Lot:        "PL123456L",
		Oven:       "V5",
		Program:    "3",
		StartTime:  start,
		EndTime:    start.Add(60 * time.Minute),
		StartTemps: []float64{72.5, 88},
		Duration:   60,
		Stages: []models.Stage{
			{Label: "Stage 1", Minutes: 30},
			{Label: "Stage 2", Minutes: 30},
		},
	}
	if withYield {
		fields.InWeight = models.WeightOf(420)
		fields.OutWeight = models.WeightOf(110)
		fields.Yield = models.YieldOf(110.0 / 420.0)
	}
	return models.NewCookRecord(fields)
}

func TestDrawSummaryView(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	Draw(screen, testRecord(true), ViewSummary, true, 0)

	text := screenText(screen)
	assert.Contains(t, text, "OvenReader  404E_PL123456L.txt")
	assert.Contains(t, text, "[1 Summary]")
	assert.Contains(t, text, "Product:    404E")
	assert.Contains(t, text, "Oven:       V5")
	assert.Contains(t, text, "Duration:   60 min [1 hr 0 min]")
	assert.Contains(t, text, "Yield:       26.2%")
	assert.Contains(t, text, "q quit")
}

func TestDrawSummaryViewWithoutWeights(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	Draw(screen, testRecord(false), ViewSummary, false, 0)

	text := screenText(screen)
	assert.Contains(t, text, "In-weight:  NA")
	assert.Contains(t, text, "Yield:      NA")
	assert.NotContains(t, text, "q quit")
}

func TestDrawStagesView(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	Draw(screen, testRecord(true), ViewStages, false, 0)

	text := screenText(screen)
	assert.Contains(t, text, "[2 Stages]")
	assert.Contains(t, text, "Stage 1     30 min")
	assert.Contains(t, text, "Stage 2     30 min")
	assert.Contains(t, text, "Total       60 min")

	// Title on row 3, frame from row 4 to row 7 around the two bars
	corners := map[[2]int]rune{
		{1, 4}:  '┌',
		{98, 4}: '┐',
		{1, 7}:  '└',
		{98, 7}: '┘',
	}
	for pos, want := range corners {
		r, _, _, _ := screen.GetContent(pos[0], pos[1])
		assert.Equal(t, string(want), string(r), "corner at %v", pos)
	}
	r, _, _, _ := screen.GetContent(1, 5)
	assert.Equal(t, "│", string(r))
}

func TestDrawStagesViewWithoutStages(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	Draw(screen, models.NewCookRecord(models.CookFields{FileName: "P_L.txt"}), ViewStages, false, 0)

	text := screenText(screen)
	assert.Contains(t, text, "No stage data")
	assert.NotContains(t, text, "┌")
}

func TestDrawSummaryViewFieldHelp(t *testing.T) {
	screen := newTestScreen(t, 120, 30)
	Draw(screen, testRecord(true), ViewSummary, true, 0)

	text := screenText(screen)
	assert.Contains(t, text, "Duration:   60 min [1 hr 0 min]  ("+GetDescription("Duration")+")")
	assert.Contains(t, text, "("+GetDescription("Yield")+")")

	screen = newTestScreen(t, 120, 30)
	Draw(screen, testRecord(true), ViewSummary, false, 0)
	assert.NotContains(t, screenText(screen), GetDescription("Duration"))
}

func TestDrawTemperaturesView(t *testing.T) {
	screen := newTestScreen(t, 100, 30)
	Draw(screen, testRecord(true), ViewTemperatures, false, 10)

	text := screenText(screen)
	assert.Contains(t, text, "Start: [72.5, 88]")
	assert.Contains(t, text, "────────▁█")
	assert.Contains(t, text, "End: []")
	assert.Contains(t, text, "no readings")
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "─────", RenderSparkline(nil, 5))
	assert.Equal(t, "──▁▁▁", RenderSparkline([]float64{5, 5, 5}, 5))
	assert.Equal(t, "▁█", RenderSparkline([]float64{1, 2, 3}, 2))
	assert.Equal(t, "", RenderSparkline([]float64{1}, 0))
}

func TestViewerHandleEvent(t *testing.T) {
	v := &Viewer{Record: testRecord(true)}

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, ViewStages, v.View)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone)))
	assert.Equal(t, ViewTemperatures, v.View)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, ViewSummary, v.View)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)))
	assert.Equal(t, ViewTemperatures, v.View)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone)))
	assert.Equal(t, ViewTemperatures, v.View)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	assert.True(t, v.ShowHelp)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestViewerRunQuitsOnKey(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	v := &Viewer{Record: testRecord(true), ShowHelp: true}

	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, v.Run(ctx, screen))
	assert.Equal(t, ViewStages, v.View)
	assert.NoError(t, ctx.Err(), "viewer should quit before the timeout")
}
