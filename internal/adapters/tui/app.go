package tui

import (
	"context"

	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Completion messages. Each carries enough identity for the event loop
// to drop results that are no longer relevant: there is no
// cancellation, only a liveness check on arrival.
type gateResolvedMsg struct {
	result application.GateResult
}

type authDoneMsg struct {
	session domain.Session
	err     error
}

type interestsSavedMsg struct {
	err error
}

type suggestionMsg struct {
	owner   *application.Workflow
	outcome application.Outcome
}

type historyMsg struct {
	owner   *application.Workflow
	entries []domain.HistoryEntry
	err     error
}

type chatReplyMsg struct {
	owner *application.Conversation
	reply application.Reply
}

// Model is the root bubbletea model. It owns no business state; the
// orchestrator does. The model translates key events into transitions
// and completion messages into Apply calls.
type Model struct {
	orchestrator *application.Orchestrator
	styles       styles

	login     loginModel
	interests interestsModel
	workflow  workflowModel

	width int
}

func New(orchestrator *application.Orchestrator) Model {
	st := newStyles()

	return Model{
		orchestrator: orchestrator,
		styles:       st,
		login:        newLoginModel(),
		interests:    newInterestsModel(),
		workflow:     newWorkflowModel(),
	}
}

func (m Model) Init() tea.Cmd {
	query, resolving := m.orchestrator.Restore(context.Background())
	if resolving {
		return tea.Batch(textinput.Blink, m.resolveGateCmd(query))
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+e":
			if m.orchestrator.Screen() == application.ScreenWorkflow {
				m.orchestrator.EditInterests()
				m.interests = newInterestsModel()
				return m, nil
			}
		case "ctrl+l":
			if m.orchestrator.Screen() != application.ScreenLogin {
				_ = m.orchestrator.Logout(context.Background())
				m.login = newLoginModel()
				m.workflow = newWorkflowModel()
				return m, textinput.Blink
			}
		}
		return m.updateScreen(msg)

	case gateResolvedMsg:
		if m.orchestrator.ApplyGate(msg.result) {
			switch m.orchestrator.Screen() {
			case application.ScreenWorkflow:
				m.workflow = newWorkflowModel()
				return m, m.historyCmd(m.orchestrator.Workflow())
			case application.ScreenInterests:
				m.interests = newInterestsModel()
			}
		}
		return m, nil

	case authDoneMsg:
		return m.applyAuth(msg)

	case interestsSavedMsg:
		m.interests.saving = false
		if msg.err != nil {
			m.interests.errText = errorText(msg.err)
			return m, nil
		}
		m.orchestrator.InterestsSaved()
		m.workflow = newWorkflowModel()
		return m, m.historyCmd(m.orchestrator.Workflow())

	case suggestionMsg:
		workflow := m.orchestrator.Workflow()
		if workflow == nil || workflow != msg.owner {
			return m, nil
		}
		if workflow.Apply(msg.outcome) && workflow.Phase() == application.PhaseReady {
			return m, m.historyCmd(workflow)
		}
		return m, nil

	case historyMsg:
		if workflow := m.orchestrator.Workflow(); workflow != nil && workflow == msg.owner {
			workflow.ApplyHistory(msg.entries, msg.err)
		}
		return m, nil

	case chatReplyMsg:
		workflow := m.orchestrator.Workflow()
		if workflow == nil || workflow.Conversation() != msg.owner {
			// Reply for a discarded suggestion's chat; never displayed.
			return m, nil
		}
		msg.owner.Apply(msg.reply)
		return m, nil
	}

	return m.updateScreen(msg)
}

func (m Model) View() string {
	switch m.orchestrator.Screen() {
	case application.ScreenLogin:
		return m.loginView()
	case application.ScreenInterests:
		return m.interestsView()
	case application.ScreenWorkflow:
		return m.workflowView()
	default:
		return m.styles.subtitle.Render("Loading...") + "\n"
	}
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.orchestrator.Screen() {
	case application.ScreenLogin:
		return m.updateLogin(msg)
	case application.ScreenInterests:
		return m.updateInterests(msg)
	case application.ScreenWorkflow:
		return m.updateWorkflow(msg)
	}
	return m, nil
}

func (m Model) applyAuth(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errText = errorText(msg.err)
		return m, nil
	}

	query, err := m.orchestrator.CompleteLogin(context.Background(), msg.session)
	if err != nil {
		m.login.errText = errorText(err)
		return m, nil
	}

	return m, m.resolveGateCmd(query)
}

func (m Model) resolveGateCmd(query application.GateQuery) tea.Cmd {
	orchestrator := m.orchestrator
	return func() tea.Msg {
		return gateResolvedMsg{result: orchestrator.ResolveGate(context.Background(), query)}
	}
}

func (m Model) historyCmd(workflow *application.Workflow) tea.Cmd {
	if workflow == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := workflow.RefreshHistory(context.Background())
		return historyMsg{owner: workflow, entries: entries, err: err}
	}
}
