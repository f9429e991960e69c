package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	email      textinput.Model
	password   textinput.Model
	mode       domain.AuthMode
	focus      int
	submitting bool
	errText    string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		email:    email,
		password: password,
		mode:     domain.AuthModeLogin,
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.login.submitting {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			m.login.focus = (m.login.focus + 1) % 2
			if m.login.focus == 0 {
				m.login.email.Focus()
				m.login.password.Blur()
			} else {
				m.login.email.Blur()
				m.login.password.Focus()
			}
			return m, textinput.Blink
		case "ctrl+s":
			if m.login.mode == domain.AuthModeLogin {
				m.login.mode = domain.AuthModeSignup
			} else {
				m.login.mode = domain.AuthModeLogin
			}
			return m, nil
		case "enter":
			return m.submitLogin()
		}
	}

	var cmd tea.Cmd
	if m.login.focus == 0 {
		m.login.email, cmd = m.login.email.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.login.email.Value())
	password := m.login.password.Value()
	if email == "" || password == "" {
		m.login.errText = "Email and password are required"
		return m, nil
	}

	m.login.submitting = true
	m.login.errText = ""

	gateway := m.orchestrator.Auth()
	mode := m.login.mode
	return m, func() tea.Msg {
		session, err := gateway.Submit(context.Background(), mode, email, password)
		return authDoneMsg{session: session, err: err}
	}
}

func (m Model) loginView() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.title.Render("Plot Twist"))
	b.WriteString("\n")
	b.WriteString(st.subtitle.Render("Your personal activity suggester"))
	b.WriteString("\n\n")

	heading := "Welcome Back"
	action := "log in"
	other := "sign up"
	if m.login.mode == domain.AuthModeSignup {
		heading = "Create Account"
		action = "sign up"
		other = "log in"
	}
	b.WriteString(st.header.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(m.login.email.View())
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")

	if m.login.submitting {
		b.WriteString(st.pending.Render("Loading..."))
		b.WriteString("\n")
	} else if m.login.errText != "" {
		b.WriteString(st.errText.Render(m.login.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.hint.Render(fmt.Sprintf("enter: %s  -  ctrl+s: switch to %s  -  ctrl+c: quit", action, other)))
	b.WriteString("\n")

	return b.String()
}

// errorText picks the line shown next to the triggering control. A
// structured backend message passes through verbatim; transport
// failures collapse into one generic, non-leaking message.
func errorText(err error) string {
	var serverErr *domain.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	if errors.Is(err, domain.ErrConnection) {
		return domain.ConnectionFailedText
	}
	return err.Error()
}
