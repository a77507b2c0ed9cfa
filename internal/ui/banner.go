package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const bannerArt = `
   ______      __              _____ __              __           __
  / ____/_  __/ /_  ___  _____/ ___// /_  ___  _____/ /___  _____/ /__
 / /   / / / / __ \/ _ \/ ___/\__ \/ __ \/ _ \/ ___/ / __ \/ ___/ //_/
/ /___/ /_/ / /_/ /  __/ /   ___/ / / / /  __/ /  / / /_/ / /__/ ,<
\____/\__, /_.___/\___/_/   /____/_/ /_/\___/_/  /_/\____/\___/_/|_|
     /____/
`

var (
	neonMagenta = lipgloss.Color("#FF2E88")
	neonCyan    = lipgloss.Color("#00E5FF")
	dimGray     = lipgloss.Color("#6B7280")

	bannerStyle = lipgloss.NewStyle().
			Foreground(neonMagenta).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(neonCyan)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(neonMagenta).
			Padding(0, 2)

	ruleStyle = lipgloss.NewStyle().
			Foreground(neonMagenta).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(neonCyan)

	mutedStyle = lipgloss.NewStyle().
			Foreground(dimGray)
)

// SetNoColor drops lipgloss down to the ASCII profile so panels render
// without escape sequences.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Banner renders the neon startup panel.
func Banner(w io.Writer) {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		bannerStyle.Render(bannerArt),
		subtitleStyle.Render("username scanner • multi-platform • neon TUI"),
	)
	fmt.Fprintln(w, panelStyle.Render(body))
}

// Rule prints a titled section divider.
func Rule(w io.Writer, title string) {
	fmt.Fprintln(w, ruleStyle.Render("── "+title+" "+"─────────────────────────────"))
}

// ScanConfig prints the per-run configuration line shown before probing.
func ScanConfig(w io.Writer, targets, concurrency int, timeout time.Duration, filter, exportDir string) {
	if filter == "" {
		filter = "none"
	}
	line := fmt.Sprintf("%s %d   %s %d   %s %s   %s %s",
		labelStyle.Render("targets:"), targets,
		labelStyle.Render("threads:"), concurrency,
		labelStyle.Render("timeout:"), timeout,
		labelStyle.Render("filter:"), filter,
	)
	fmt.Fprintln(w, line)
	if exportDir != "" {
		fmt.Fprintln(w, labelStyle.Render("export:")+" "+mutedStyle.Render(exportDir))
	}
}
