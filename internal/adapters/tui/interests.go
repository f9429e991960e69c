package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

type interestsModel struct {
	cursor   int
	selected []string
	saving   bool
	errText  string
}

func newInterestsModel() interestsModel {
	return interestsModel{}
}

func (m Model) updateInterests(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.interests.saving {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.interests.cursor > 0 {
			m.interests.cursor--
		}
	case "down", "j":
		if m.interests.cursor < len(domain.AvailableInterests)-1 {
			m.interests.cursor++
		}
	case " ":
		label := domain.AvailableInterests[m.interests.cursor]
		m.interests.selected = domain.ToggleInterest(m.interests.selected, label)
		m.interests.errText = ""
	case "enter":
		return m.saveInterests()
	}

	return m, nil
}

func (m Model) saveInterests() (tea.Model, tea.Cmd) {
	// The empty set never reaches the gate; the button stays blocked.
	if len(m.interests.selected) == 0 {
		m.interests.errText = "Select at least 1 interest"
		return m, nil
	}

	m.interests.saving = true
	m.interests.errText = ""

	gate := m.orchestrator.Gate()
	userID := m.orchestrator.Session().UserID
	selected := m.interests.selected
	return m, func() tea.Msg {
		return interestsSavedMsg{err: gate.Save(context.Background(), userID, selected)}
	}
}

func (m Model) interestsView() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.title.Render("What are your interests?"))
	b.WriteString("\n")
	b.WriteString(st.subtitle.Render("Select as many as you like (at least 1)"))
	b.WriteString("\n\n")

	for i, label := range domain.AvailableInterests {
		cursor := "  "
		if i == m.interests.cursor {
			cursor = st.focus.Render("> ")
		}
		mark := "[ ]"
		line := st.option.Render(label)
		if containsLabel(m.interests.selected, label) {
			mark = st.selected.Render("[x]")
			line = st.selected.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, line))
	}

	b.WriteString("\n")
	count := len(m.interests.selected)
	plural := "s"
	if count == 1 {
		plural = ""
	}
	if m.interests.saving {
		b.WriteString(st.pending.Render("Saving..."))
	} else {
		b.WriteString(st.header.Render(fmt.Sprintf("Continue with %d interest%s", count, plural)))
	}
	b.WriteString("\n")

	if m.interests.errText != "" {
		b.WriteString(st.errText.Render(m.interests.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.hint.Render("space: toggle  -  enter: save  -  ctrl+l: logout  -  ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

func containsLabel(selection []string, label string) bool {
	for _, selected := range selection {
		if selected == label {
			return true
		}
	}
	return false
}
