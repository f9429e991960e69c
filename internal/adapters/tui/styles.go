package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	subtitle   lipgloss.Style
	header     lipgloss.Style
	hint       lipgloss.Style
	errText    lipgloss.Style
	notice     lipgloss.Style
	focus      lipgloss.Style
	selected   lipgloss.Style
	option     lipgloss.Style
	minutes    lipgloss.Style
	band       lipgloss.Style
	suggestion lipgloss.Style
	userMsg    lipgloss.Style
	aiMsg      lipgloss.Style
	pending    lipgloss.Style
	section    lipgloss.Style
	entry      lipgloss.Style
	entryMeta  lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105")),
		subtitle:   lipgloss.NewStyle().Faint(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		hint:       lipgloss.NewStyle().Faint(true),
		errText:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		focus:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105")),
		selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("112")),
		option:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		minutes:    lipgloss.NewStyle().Bold(true),
		band:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("105")),
		suggestion: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")).Border(lipgloss.RoundedBorder()).Padding(0, 1),
		userMsg:    lipgloss.NewStyle().Foreground(lipgloss.Color("105")),
		aiMsg:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pending:    lipgloss.NewStyle().Faint(true).Italic(true),
		section:    lipgloss.NewStyle().MarginTop(1).Bold(true),
		entry:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		entryMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}
