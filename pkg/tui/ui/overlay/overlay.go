// Package overlay composes a modal view atop a background view while keeping
// the background visible around it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Center draws foreground centered over background within width x height.
func Center(background string, width, height int, foreground string) string {
	bg := normalize(background, width, height)
	if strings.TrimSpace(foreground) == "" {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fg {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth > width {
		fgWidth = width
	}
	fgHeight := len(fg)
	if fgHeight > height {
		fg = fg[:height]
		fgHeight = height
	}

	offsetX := (width - fgWidth) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	offsetY := (height - fgHeight) / 2
	if offsetY < 0 {
		offsetY = 0
	}

	for row, line := range fg {
		y := offsetY + row
		if y >= len(bg) {
			break
		}
		line = pad(line, fgWidth)
		base := bg[y]
		prefix := cut(base, 0, offsetX)
		suffix := cut(base, offsetX+fgWidth, width)
		bg[y] = prefix + line + suffix
	}
	return strings.Join(bg, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}

func cut(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if seen+rw <= start {
			seen += rw
			continue
		}
		if seen+rw > end {
			break
		}
		b.WriteRune(r)
		seen += rw
	}
	return b.String()
}
