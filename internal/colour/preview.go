package colour

import (
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 8

// ColourPreview returns a solid terminal block for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Width(width).
		Render("")
}

// ColourPreviewWithText returns a colour block with text overlaid.
// The text colour is chosen to have good contrast with the background.
// Text longer than width is truncated.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	if len(text) > width {
		text = text[:width]
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(ContrastText(c).Hex())).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}
