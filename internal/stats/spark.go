// Package stats contains frequency-series helpers for display.
package stats

import (
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const sparkChars = " .:-=+*#%@"

const (
	minSparkWidth        = 8
	terminalWidthBackup  = 80
	terminalWidthReserve = 2
)

// Sparkline renders a single-line ASCII sparkline for the values.
// Frequencies are non-negative, so the scale is anchored at zero and runs
// to the series maximum; a window's leading 0 sample therefore always
// shows as the lowest glyph.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		return strings.Repeat(string(sparkChars[0]), len(values))
	}
	out := make([]byte, len(values))
	for i, v := range values {
		pos := v / maxVal
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		out[i] = sparkChars[idx]
	}
	return string(out)
}

// Resample fits a series into the given width by averaging buckets when
// shrinking and repeating points when stretching.
func Resample(values []float64, width int) []float64 {
	if len(values) == 0 || width <= 0 {
		return nil
	}
	if len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) > width {
		for i := 0; i < width; i++ {
			start := int(float64(i) * float64(len(values)) / float64(width))
			end := int(float64(i+1) * float64(len(values)) / float64(width))
			if end <= start {
				end = start + 1
			}
			if end > len(values) {
				end = len(values)
			}
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
		return out
	}
	for i := 0; i < width; i++ {
		src := i * len(values) / width
		if src >= len(values) {
			src = len(values) - 1
		}
		out[i] = values[src]
	}
	return out
}

// SparkWidthFor computes a sparkline width that fits within the total
// available width once the given label width is taken off.
func SparkWidthFor(totalWidth, labelWidth int) int {
	width := totalWidth - labelWidth - terminalWidthReserve
	if width < minSparkWidth {
		width = minSparkWidth
	}
	return width
}

// TerminalWidth reports the current terminal width, falling back to a
// default when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
