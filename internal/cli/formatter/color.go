package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/midoradev/study-planner/internal/domain"
)

// palette holds the terminal colors, loosely based on Catppuccin Mocha.
type palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

var colors = palette{
	Green:  lipgloss.Color("#a6e3a1"),
	Yellow: lipgloss.Color("#f9e2af"),
	Red:    lipgloss.Color("#f38ba8"),
	Blue:   lipgloss.Color("#89b4fa"),
	Purple: lipgloss.Color("#cba6f7"),
	Dim:    lipgloss.Color("#6c7086"),
	Fg:     lipgloss.Color("#cdd6f4"),
	Header: lipgloss.Color("#fab387"),
}

// Raw colors for TUI components that build their own styles.
var (
	ColorHeader = colors.Header
	ColorDim    = colors.Dim
	ColorFg     = colors.Fg
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	StyleGreen  = fg(colors.Green)
	StyleYellow = fg(colors.Yellow)
	StyleRed    = fg(colors.Red)
	StyleBlue   = fg(colors.Blue)
	StylePurple = fg(colors.Purple)
	StyleDim    = fg(colors.Dim)
	StyleFg     = fg(colors.Fg)
	StyleHeader = fg(colors.Header).Bold(true)
	StyleBold   = fg(colors.Fg).Bold(true)
)

// RiskIndicator returns a colored badge such as "● OVERDUE".
func RiskIndicator(level domain.RiskLevel) string {
	switch level {
	case domain.RiskOverdue:
		return StyleRed.Render("● OVERDUE")
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.RiskLow:
		return StyleBlue.Render("● LOW")
	default:
		return StyleDim.Render("● NONE")
	}
}

// PriorityPill renders a priority as a short colored tag.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StylePurple.Render("[high]")
	case domain.PriorityMedium:
		return StyleBlue.Render("[med]")
	default:
		return StyleDim.Render("[low]")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
