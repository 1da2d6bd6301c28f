package ui

import (
	"github.com/gdamore/tcell/v2"
)

// DrawBar draws a horizontal bar chart
func DrawBar(screen tcell.Screen, x, y, width int, value, max float64, color tcell.Color) {
	if max <= 0 || width <= 0 {
		return
	}

	percentage := value / max
	if percentage > 1 {
		percentage = 1
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage)

	// Draw filled portion
	for i := 0; i < filled && i < width; i++ {
		screen.SetContent(x+i, y, '█', nil, tcell.StyleDefault.Foreground(color))
	}

	// Draw empty portion
	for i := filled; i < width; i++ {
		screen.SetContent(x+i, y, '░', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

// DrawSparkline draws a sparkline chart scaled between the data's min and max
func DrawSparkline(screen tcell.Screen, x, y, width int, data []float64, color tcell.Color) {
	if len(data) == 0 || width <= 0 {
		return
	}

	pos := 0
	for _, ch := range RenderSparkline(data, width) {
		screen.SetContent(x+pos, y, ch, nil, tcell.StyleDefault.Foreground(color))
		pos++
	}
}

// GetColorForValue returns a color based on value thresholds
func GetColorForValue(value, low, high float64) tcell.Color {
	if value < low {
		return tcell.ColorGreen
	} else if value < high {
		return tcell.ColorYellow
	} else {
		return tcell.ColorRed
	}
}

// DrawText draws text at the specified position
func DrawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// ClearLine clears a line on the screen
func ClearLine(screen tcell.Screen, y, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// DrawBox draws a box border
func DrawBox(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}

	// Top border
	screen.SetContent(x, y, '┌', nil, style)
	for i := 1; i < width-1; i++ {
		screen.SetContent(x+i, y, '─', nil, style)
	}
	screen.SetContent(x+width-1, y, '┐', nil, style)

	// Side borders
	for i := 1; i < height-1; i++ {
		screen.SetContent(x, y+i, '│', nil, style)
		screen.SetContent(x+width-1, y+i, '│', nil, style)
	}

	// Bottom border
	screen.SetContent(x, y+height-1, '└', nil, style)
	for i := 1; i < width-1; i++ {
		screen.SetContent(x+i, y+height-1, '─', nil, style)
	}
	screen.SetContent(x+width-1, y+height-1, '┘', nil, style)
}
