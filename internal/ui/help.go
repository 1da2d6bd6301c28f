package ui

import (
	"github.com/gdamore/tcell/v2"
)

// FieldDescriptions explains each part of a cook record
var FieldDescriptions = map[string]string{
	"Summary":      "Product, lot, oven and program of the cook with its start and end",
	"Stages":       "Stage durations in minutes, in the order the controller reported them",
	"Temperatures": "Probe readings taken at the START and END markers",
	"Yield":        "Out-weight divided by in-weight; NA when either weight is missing",
	"Duration":     "Sum of all stage durations, truncated to whole minutes",
}

// GetDescription returns a user-friendly description for a view or field
func GetDescription(name string) string {
	if desc, ok := FieldDescriptions[name]; ok {
		return desc
	}
	return ""
}

// DrawHelpFooter draws contextual help at the bottom of the screen
func DrawHelpFooter(screen tcell.Screen, width, height int, context string) {
	if desc := GetDescription(context); desc != "" {
		// Clear the help line
		ClearLine(screen, height-2, width)

		helpText := "ℹ " + desc
		if runes := []rune(helpText); len(runes) > width-4 && width > 7 {
			helpText = string(runes[:width-7]) + "..."
		}
		DrawText(screen, 2, height-2, helpText, tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true))
	}

	keys := "Tab/1-3 switch view  h help  q quit"
	ClearLine(screen, height-1, width)
	DrawText(screen, 2, height-1, keys, tcell.StyleDefault.Foreground(tcell.ColorDarkCyan))
}
