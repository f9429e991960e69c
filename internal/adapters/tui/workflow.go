package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const minutesStep = 5

type workflowModel struct {
	minutes   int
	energy    int
	chatOpen  bool
	chatInput textinput.Model
	spin      spinner.Model
}

func newWorkflowModel() workflowModel {
	input := textinput.New()
	input.Placeholder = "Ask a question..."
	input.CharLimit = 500

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return workflowModel{
		minutes:   30,
		energy:    1, // medium
		chatInput: input,
		spin:      spin,
	}
}

func (m Model) updateWorkflow(msg tea.Msg) (tea.Model, tea.Cmd) {
	workflow := m.orchestrator.Workflow()
	if workflow == nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		conversation := workflow.Conversation()
		if workflow.Requesting() || (conversation != nil && conversation.Pending()) {
			var cmd tea.Cmd
			m.workflow.spin, cmd = m.workflow.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.workflow.chatOpen {
			return m.updateChat(msg, workflow)
		}

		switch msg.String() {
		case "left", "h":
			m.workflow.minutes = clamp(m.workflow.minutes-minutesStep, domain.MinMinutes, domain.MaxMinutes)
		case "right", "l":
			m.workflow.minutes = clamp(m.workflow.minutes+minutesStep, domain.MinMinutes, domain.MaxMinutes)
		case "up", "k":
			if m.workflow.energy > 0 {
				m.workflow.energy--
			}
		case "down", "j":
			if m.workflow.energy < len(domain.Energies())-1 {
				m.workflow.energy++
			}
		case "enter":
			return m.submitSuggestion(workflow)
		case "a":
			if workflow.Conversation() != nil {
				m.workflow.chatOpen = true
				m.workflow.chatInput.Focus()
				return m, textinput.Blink
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) submitSuggestion(workflow *application.Workflow) (tea.Model, tea.Cmd) {
	req := domain.FreeTime{
		Minutes: m.workflow.minutes,
		Energy:  domain.Energies()[m.workflow.energy],
	}

	// Begin enforces the ten minute floor and the in-flight guard; a
	// rejected submit is a no-op and the view already explains why.
	attempt, err := workflow.Begin(req)
	if err != nil {
		return m, nil
	}

	m.workflow.chatOpen = false
	m.workflow.chatInput.Reset()

	fetch := func() tea.Msg {
		return suggestionMsg{owner: workflow, outcome: workflow.Fetch(context.Background(), attempt)}
	}
	return m, tea.Batch(fetch, m.workflow.spin.Tick)
}

func (m Model) updateChat(key tea.KeyMsg, workflow *application.Workflow) (tea.Model, tea.Cmd) {
	conversation := workflow.Conversation()
	if conversation == nil {
		m.workflow.chatOpen = false
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.workflow.chatOpen = false
		m.workflow.chatInput.Blur()
		return m, nil
	case "enter":
		if conversation.Pending() {
			return m, nil
		}
		prompt, err := conversation.Send(m.workflow.chatInput.Value())
		if err != nil {
			return m, nil
		}
		m.workflow.chatInput.Reset()

		fetch := func() tea.Msg {
			return chatReplyMsg{owner: conversation, reply: conversation.Fetch(context.Background(), prompt)}
		}
		return m, tea.Batch(fetch, m.workflow.spin.Tick)
	}

	var cmd tea.Cmd
	m.workflow.chatInput, cmd = m.workflow.chatInput.Update(key)
	return m, cmd
}

func (m Model) workflowView() string {
	st := m.styles
	workflow := m.orchestrator.Workflow()
	if workflow == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(st.title.Render("Plot Twist"))
	b.WriteString("  ")
	b.WriteString(st.header.Render(m.orchestrator.Session().Email))
	b.WriteString("\n\n")

	b.WriteString(st.header.Render("How much free time do you have?"))
	b.WriteString("\n")
	b.WriteString(minutesGauge(m.workflow.minutes, st))
	b.WriteString("  ")
	b.WriteString(st.minutes.Render(fmt.Sprintf("%d minutes", m.workflow.minutes)))
	b.WriteString("\n")
	b.WriteString(st.band.Render(domain.TimeWindowMessage(m.workflow.minutes)))
	b.WriteString("\n\n")

	b.WriteString(st.header.Render("Energy level?"))
	b.WriteString("  ")
	for i, level := range domain.Energies() {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.workflow.energy {
			b.WriteString(st.selected.Render("[" + string(level) + "]"))
		} else {
			b.WriteString(st.option.Render(" " + string(level) + " "))
		}
	}
	b.WriteString("\n\n")

	switch {
	case workflow.Requesting():
		b.WriteString(m.workflow.spin.View())
		b.WriteString(st.pending.Render("Finding something for you..."))
		b.WriteString("\n")
	case m.workflow.minutes < domain.SubmitMinMinutes:
		b.WriteString(st.notice.Render("Please select more than 10 minutes"))
		b.WriteString("\n")
	default:
		b.WriteString(st.hint.Render("enter: let's go"))
		b.WriteString("\n")
	}

	if suggestion := workflow.Suggestion(); suggestion != "" {
		b.WriteString("\n")
		b.WriteString(st.suggestion.Render(suggestion))
		b.WriteString("\n")
		if !m.workflow.chatOpen && workflow.Conversation() != nil {
			b.WriteString(st.hint.Render("a: ask AI about this"))
			b.WriteString("\n")
		}
	}

	if m.workflow.chatOpen {
		b.WriteString(m.chatView(workflow))
	}

	if entries := workflow.History(); len(entries) > 0 {
		b.WriteString(st.section.Render("Your Past Suggestions"))
		b.WriteString("\n")
		for _, entry := range entries {
			b.WriteString(st.entry.Render(entry.Suggestion))
			b.WriteString("\n")
			meta := fmt.Sprintf("%d mins - %s energy", entry.Minutes, entry.Energy)
			if !entry.CreatedAt.IsZero() {
				meta += " - " + entry.CreatedAt.Format("2006-01-02")
			}
			b.WriteString(st.entryMeta.Render(meta))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.hint.Render("left/right: minutes  -  up/down: energy  -  ctrl+e: edit interests  -  ctrl+l: logout  -  ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) chatView(workflow *application.Workflow) string {
	st := m.styles
	conversation := workflow.Conversation()
	if conversation == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.section.Render("Chat about this"))
	b.WriteString("\n")

	messages := conversation.Messages()
	if len(messages) == 0 {
		b.WriteString(st.empty.Render("Ask anything about this suggestion..."))
		b.WriteString("\n")
	}
	for _, message := range messages {
		if message.Role == domain.RoleUser {
			b.WriteString(st.userMsg.Render("you: " + message.Text))
		} else {
			b.WriteString(st.aiMsg.Render("ai: " + message.Text))
		}
		b.WriteString("\n")
	}

	if conversation.Pending() {
		b.WriteString(m.workflow.spin.View())
		b.WriteString(st.pending.Render("AI is thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(m.workflow.chatInput.View())
	b.WriteString("\n")
	b.WriteString(st.hint.Render("enter: send  -  esc: close chat"))
	b.WriteString("\n")

	return b.String()
}

func minutesGauge(minutes int, st styles) string {
	const cells = 24

	filled := minutes * cells / domain.MaxMinutes
	return st.header.Render("[") +
		st.selected.Render(strings.Repeat("=", filled)) +
		st.empty.Render(strings.Repeat("-", cells-filled)) +
		st.header.Render("]")
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
