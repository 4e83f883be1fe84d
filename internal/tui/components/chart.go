package components

import (
	"strings"

	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		if v == 0 {
			// Missed days stand out against delivered ones.
			buf.WriteRune('·')
			continue
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HorizontalBars renders labeled horizontal bars scaled to the largest
// value. Labels are left-padded to align; width bounds the bar length.
func HorizontalBars(labels []string, values []float64, color lipgloss.Color, width int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	labelW := 0
	for i, v := range values {
		if v > peak {
			peak = v
		}
		if w := lipgloss.Width(labels[i]); w > labelW {
			labelW = w
		}
	}
	if peak == 0 {
		peak = 1
	}

	barMax := width - labelW - 2
	if barMax < 1 {
		barMax = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for i, v := range values {
		pad := labelW - lipgloss.Width(labels[i])
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(strings.Repeat(" ", pad+1))
		barLen := int(v / peak * float64(barMax))
		b.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		b.WriteString("\n")
	}
	return b.String()
}
