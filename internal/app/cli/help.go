package cli

import "github.com/charmbracelet/lipgloss"

// RenderHelp renders usage, options and examples
func RenderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("bootsplash [options]")+"            Play the boot animation"),
		bodyMedium.Render("  "+commandName.Render("bootsplash version")+"              Show version"),
		bodyMedium.Render("  "+commandName.Render("bootsplash help")+"                 Show help"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("-a, --archive <paths>")+"           Animation archives, tried in order"),
		bodyMedium.Render("  "+commandName.Render("    --verbosity <level>")+"         silent, bootloop, fatal … verbose"),
		bodyMedium.Render("  "+commandName.Render("    --no-input")+"                  Ignore the volume keys"),
		bodyMedium.Render("  "+commandName.Render("-q, --quiet")+"                     Discard application logs"),
		bodyMedium.Render("  "+commandName.Render("-v, --version")+"                   Show version"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("bootsplash")+"                      Play the installed animation"),
		bodyMedium.Render("  "+exampleCode.Render("bootsplash --verbosity=bootloop")+" Show boot diagnostics"),
		bodyMedium.Render("  "+exampleCode.Render("bootsplash -a ./anim.zip -q")+"     Preview an archive"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Options:"),
		options,
		sectionHeader.Render("Examples:"),
		examples,
	) + "\n"
}
