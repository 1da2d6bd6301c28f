package ui

import (
	"math"
	"strings"
)

// Sparkline characters for different levels (8 levels)
var sparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline creates a sparkline string from float64 values, scaled
// between their own min and max. Short series are left-padded with '─'.
func RenderSparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	// If we have more values than width, keep the first 'width' readings
	if len(values) > width {
		values = values[:width]
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	// Flat series sit on the bottom row
	span := max - min
	if span == 0 {
		span = 1
	}

	var result strings.Builder
	for i := 0; i < width-len(values); i++ {
		result.WriteRune('─')
	}

	for _, v := range values {
		scaled := (v - min) / span * float64(len(sparklineChars)-1)
		index := int(math.Round(scaled))
		if index < 0 {
			index = 0
		}
		if index >= len(sparklineChars) {
			index = len(sparklineChars) - 1
		}
		result.WriteRune(sparklineChars[index])
	}

	return result.String()
}
