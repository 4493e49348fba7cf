package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleClock renders the big elapsed-time readout in the live view.
	StyleClock = lipgloss.NewStyle().Foreground(ColorFg).Bold(true).Padding(0, 1)
)

var categoryColors = map[string]lipgloss.Color{
	"Deep Work":  ColorPurple,
	"Coding":     ColorBlue,
	"Reading":    ColorGreen,
	"Writing":    ColorYellow,
	"Design":     ColorHeader,
	"Learning":   ColorAqua,
	"Exercise":   ColorRed,
	"Meditation": ColorAqua,
	"Creative":   ColorPurple,
	"Planning":   ColorBlue,
	"Meeting":    ColorYellow,
}

// CategoryBadge renders a category label in its accent color. Categories
// the app doesn't ship with use the foreground color.
func CategoryBadge(category string) string {
	if category == "" {
		return StyleDim.Render("--")
	}
	c, ok := categoryColors[category]
	if !ok {
		return StyleBold.Render(category)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(category)
}

// PhasePill returns a colored indicator for the timer phase.
func PhasePill(p timer.Phase) string {
	switch p {
	case timer.PhaseRunning:
		return StyleGreen.Render("● Running")
	case timer.PhasePaused:
		return StyleYellow.Render("❚❚ Paused")
	default:
		return StyleDim.Render("○ Idle")
	}
}

// VisibilityPill returns a colored indicator for activity visibility.
func VisibilityPill(v domain.Visibility) string {
	if v == domain.VisibilityPrivate {
		return StyleDim.Render("🔒 Private")
	}
	return StyleBlue.Render("◉ Public")
}

// FocusStyle picks the color for a focus rating.
func FocusStyle(level int) lipgloss.Style {
	switch {
	case level >= 7:
		return StyleGreen
	case level >= 5:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
