package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment within the background.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the overlay in the middle of the background.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose draws foreground atop background, keeping the background visible
// outside the overlay bounds. Both views may carry ANSI styling.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	overlayWidth := 0
	for _, line := range fgLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	overlayWidth = min(overlayWidth, width)
	overlayHeight := min(len(fgLines), height)

	x, y := offsets(width, height, overlayWidth, overlayHeight, placement)
	for row := 0; row < overlayHeight; row++ {
		base := bgLines[y+row]
		left := ansi.Truncate(base, x, "")
		mid := padToWidth(ansi.Truncate(fgLines[row], overlayWidth, ""), overlayWidth)
		right := ansi.TruncateLeft(base, x+overlayWidth, "")
		bgLines[y+row] = left + mid + right
	}
	return strings.Join(bgLines, "\n")
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func offsets(width, height, overlayWidth, overlayHeight int, p Placement) (int, int) {
	x := p.MarginX
	switch p.Horizontal {
	case lipgloss.Right:
		x = width - overlayWidth - p.MarginX
	case lipgloss.Center:
		x = (width - overlayWidth) / 2
	}
	x = max(0, min(x, width-overlayWidth))

	y := p.MarginY
	switch p.Vertical {
	case lipgloss.Bottom:
		y = height - overlayHeight - p.MarginY
	case lipgloss.Center:
		y = (height - overlayHeight) / 2
	}
	y = max(0, min(y, height-overlayHeight))
	return x, y
}
