package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	job      lipgloss.Style
	company  lipgloss.Style
	detail   lipgloss.Style
	meta     lipgloss.Style
	label    lipgloss.Style
	badge    lipgloss.Style
	warning  lipgloss.Style
	ok       lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	bullet   lipgloss.Style
	fallback lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		job:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		company:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		fallback: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
