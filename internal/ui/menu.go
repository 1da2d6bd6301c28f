package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ViewInfo contains information about each view
type ViewInfo struct {
	Name     string
	Shortcut string
}

// GetViewInfo returns information about all views
func GetViewInfo() []ViewInfo {
	return []ViewInfo{
		{Name: "Summary", Shortcut: "1"},
		{Name: "Stages", Shortcut: "2"},
		{Name: "Temperatures", Shortcut: "3"},
	}
}

// DrawCompactMenuBar draws the title line and the view tabs
func DrawCompactMenuBar(screen tcell.Screen, width int, title string, currentView ViewType) int {
	views := GetViewInfo()

	y := 0
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)

	// Fill the entire line with background
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, titleStyle)
	}
	DrawText(screen, 2, y, title, titleStyle)

	y++

	// Draw view tabs on the second line
	x := 2
	for i, view := range views {
		isCurrent := ViewType(i) == currentView

		// Use brackets for current view
		var menuItem string
		if isCurrent {
			menuItem = fmt.Sprintf("[%s %s]", view.Shortcut, view.Name)
		} else {
			menuItem = fmt.Sprintf(" %s %s ", view.Shortcut, view.Name)
		}

		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if isCurrent {
			style = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
		}

		DrawText(screen, x, y, menuItem, style)
		x += len([]rune(menuItem)) + 1
	}

	return y + 2 // Return the next available y position
}
