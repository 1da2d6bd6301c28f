package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ovenreader/internal/models"
	"ovenreader/internal/report"
)

// ViewType represents the current view
type ViewType int

const (
	ViewSummary ViewType = iota
	ViewStages
	ViewTemperatures
	ViewCount
)

const (
	timeLayout = "2006-01-02 15:04"

	// Probe readings below/above these are drawn green/red
	tempLow  = 100.0
	tempHigh = 180.0
)

// DrawSummaryView draws the cook identity, timing and weights
func DrawSummaryView(screen tcell.Screen, rec models.CookRecord, width, height int, showHelp bool, startY int) {
	y := startY
	DrawText(screen, 2, y, "COOK SUMMARY", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal))
	if showHelp {
		DrawText(screen, 16, y, "("+GetDescription("Summary")+")", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	y += 2

	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	rows := []struct {
		label string
		value string
	}{
		{"Product", rec.Product()},
		{"Lot", rec.Lot()},
		{"Oven", rec.Oven()},
		{"Program", rec.Program()},
		{"Start", rec.StartTime().Format(timeLayout)},
		{"End", rec.EndTime().Format(timeLayout)},
		{"Duration", fmt.Sprintf("%d min [%s]", rec.Duration(), report.ToHours(rec.Duration()))},
		{"In-weight", rec.InWeight().String()},
		{"Out-weight", rec.OutWeight().String()},
	}
	for _, row := range rows {
		if y >= height-2 {
			return
		}
		text := fmt.Sprintf("%-11s %s", row.label+":", row.value)
		DrawText(screen, 2, y, text, tcell.StyleDefault)
		if desc := GetDescription(row.label); showHelp && desc != "" {
			DrawText(screen, 4+len([]rune(text)), y, "("+desc+")", helpStyle)
		}
		y++
	}

	if y >= height-2 {
		return
	}
	y++
	if yield, ok := rec.Yield().Get(); ok {
		DrawText(screen, 2, y, fmt.Sprintf("%-11s %5.1f%%", "Yield:", yield*100), tcell.StyleDefault.Bold(true))
		DrawBar(screen, 22, y, width-27, yield, 1, GetColorForValue(yield, 0.25, 0.5))
	} else {
		DrawText(screen, 2, y, fmt.Sprintf("%-11s %s", "Yield:", "NA"), tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	if showHelp && y+1 < height-2 {
		DrawText(screen, 14, y+1, "("+GetDescription("Yield")+")", helpStyle)
	}
}

// DrawStagesView draws one bar per stage, scaled to the longest stage
func DrawStagesView(screen tcell.Screen, rec models.CookRecord, width, height int, showHelp bool, startY int) {
	y := startY
	DrawText(screen, 2, y, "STAGES", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow))
	if showHelp {
		DrawText(screen, 10, y, "("+GetDescription("Stages")+")", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	y++

	stages := rec.Stages()
	if len(stages) == 0 {
		DrawText(screen, 2, y+1, "No stage data", tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}

	// Bars sit inside a frame whose top border is this row
	top := y
	y++

	var longest float64
	for _, s := range stages {
		if s.Minutes > longest {
			longest = s.Minutes
		}
	}

	for _, s := range stages {
		if y >= height-3 {
			break
		}
		DrawText(screen, 2, y, fmt.Sprintf("%-9s %4d min", s.Label, int(s.Minutes)), tcell.StyleDefault)
		DrawBar(screen, 22, y, width-27, s.Minutes, longest, tcell.ColorBlue)
		y++
	}
	DrawBox(screen, 1, top, width-2, y-top+1, tcell.StyleDefault.Foreground(tcell.ColorGray))

	if y < height-2 {
		y++
		DrawText(screen, 2, y, fmt.Sprintf("Total     %4d min", rec.Duration()), tcell.StyleDefault.Bold(true))
	}
}

// DrawTemperaturesView draws start and end probe readings
func DrawTemperaturesView(screen tcell.Screen, rec models.CookRecord, width, height int, showHelp bool, sparkWidth int, startY int) {
	y := startY
	DrawText(screen, 2, y, "TEMPERATURES", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed))
	if showHelp {
		DrawText(screen, 16, y, "("+GetDescription("Temperatures")+")", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	y += 2

	if sparkWidth <= 0 || sparkWidth > width-6 {
		sparkWidth = width - 6
	}

	sections := []struct {
		title string
		temps []float64
	}{
		{"Start", rec.StartTemps()},
		{"End", rec.EndTemps()},
	}
	for _, sec := range sections {
		if y >= height-3 {
			return
		}
		DrawText(screen, 2, y, fmt.Sprintf("%s: %s", sec.title, report.FormatTemps(sec.temps)), tcell.StyleDefault.Bold(true))
		y++
		if len(sec.temps) == 0 {
			DrawText(screen, 4, y, "no readings", tcell.StyleDefault.Foreground(tcell.ColorGray))
			y += 2
			continue
		}

		var sum float64
		for _, t := range sec.temps {
			sum += t
		}
		avg := sum / float64(len(sec.temps))
		DrawSparkline(screen, 4, y, sparkWidth, sec.temps, GetColorForValue(avg, tempLow, tempHigh))
		y += 2
	}
}

// Draw renders the whole screen for the given view
func Draw(screen tcell.Screen, rec models.CookRecord, view ViewType, showHelp bool, sparkWidth int) {
	screen.Clear()
	width, height := screen.Size()

	startY := DrawCompactMenuBar(screen, width, "OvenReader  "+rec.FileName(), view)

	switch view {
	case ViewSummary:
		DrawSummaryView(screen, rec, width, height, showHelp, startY)
	case ViewStages:
		DrawStagesView(screen, rec, width, height, showHelp, startY)
	case ViewTemperatures:
		DrawTemperaturesView(screen, rec, width, height, showHelp, sparkWidth, startY)
	}

	if showHelp {
		DrawHelpFooter(screen, width, height, GetViewInfo()[view].Name)
	}
	screen.Show()
}
