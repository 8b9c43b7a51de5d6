package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")
)

var (
	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Tab   = lipgloss.NewStyle().Foreground(Subtext0).Padding(0, 1)
	// TabActive is the selected board tab.
	TabActive = lipgloss.NewStyle().Foreground(Base).Background(Lavender).Bold(true).Padding(0, 1)
	Done      = lipgloss.NewStyle().Foreground(Green)
)

// Severity colors an alert by how close its deadline is.
func Severity(severity string) lipgloss.Style {
	switch severity {
	case "red":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case "amber":
		return lipgloss.NewStyle().Foreground(Peach).Bold(true)
	case "yellow":
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return Muted
	}
}
