package cli

import (
	"github.com/charmbracelet/lipgloss"

	"bootsplash/internal/config"
)

var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	titleMedium   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	bodyMedium    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Semantic styles
var (
	sectionHeader = headlineLarge.MarginBottom(1)

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyMedium.Render(appDesc))
}
