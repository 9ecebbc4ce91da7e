package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vy-hr/portal-go/internal/api"
)

// loginResultMsg reports the login request back to the root model, which
// owns credential persistence and the session gate.
type loginResultMsg struct {
	token string
	err   error
}

type registerResultMsg struct {
	msg string
	err error
}

const (
	authFieldID = iota
	authFieldName
	authFieldEmail
	authFieldPassword
	authFieldCount
)

var authFieldLabels = [authFieldCount]string{
	"Employee ID", "Full name", "Official email", "Password",
}

// loginModel is the unauthenticated entry point. ctrl+r flips it between
// the login form and the registration form; a successful registration
// drops back to login so the fresh account can sign in.
type loginModel struct {
	client      *api.Client
	registering bool
	inputs      []textinput.Model
	focused     int
	submitting  bool
	errMsg      string
	notice      string
}

func newLoginModel(client *api.Client) loginModel {
	inputs := make([]textinput.Model, authFieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[authFieldID].Placeholder = "e.g. VY001"
	inputs[authFieldID].CharLimit = 32
	inputs[authFieldID].Focus()
	inputs[authFieldName].Placeholder = "full name"
	inputs[authFieldEmail].Placeholder = "name@company.example"
	inputs[authFieldPassword].Placeholder = "password"
	inputs[authFieldPassword].EchoMode = textinput.EchoPassword

	return loginModel{client: client, inputs: inputs}
}

func (m loginModel) typing() bool { return true }

// fieldOrder is the visible tab order; the login form hides the
// register-only fields.
func (m loginModel) fieldOrder() []int {
	if m.registering {
		return []int{authFieldID, authFieldName, authFieldEmail, authFieldPassword}
	}
	return []int{authFieldID, authFieldPassword}
}

func (m loginModel) focusField(idx int) (loginModel, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	return m, m.inputs[m.focused].Focus()
}

func (m loginModel) cycleFocus(delta int) (loginModel, tea.Cmd) {
	order := m.fieldOrder()
	pos := 0
	for i, f := range order {
		if f == m.focused {
			pos = i
			break
		}
	}
	next := order[(pos+delta+len(order))%len(order)]
	return m.focusField(next)
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			m.registering = !m.registering
			m.errMsg = ""
			m.notice = ""
			return m.focusField(authFieldID)
		case "tab", "down":
			return m.cycleFocus(1)
		case "shift+tab", "up":
			return m.cycleFocus(-1)
		case "enter":
			if m.submitting {
				return m, nil
			}
			if m.registering {
				return m.submitRegister()
			}
			return m.submitLogin()
		}

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			m.inputs[authFieldPassword].SetValue("")
		}
		return m, nil

	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		// Back to the login form so the fresh account can sign in.
		m.registering = false
		m.notice = msg.msg
		if m.notice == "" {
			m.notice = "Registered successfully. Please login."
		}
		m.inputs[authFieldPassword].SetValue("")
		return m.focusField(authFieldID)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m loginModel) submitLogin() (loginModel, tea.Cmd) {
	id := strings.TrimSpace(m.inputs[authFieldID].Value())
	pw := m.inputs[authFieldPassword].Value()
	if id == "" || pw == "" {
		m.errMsg = "Please enter Employee ID & Password"
		return m, nil
	}
	m.errMsg = ""
	m.notice = ""
	m.submitting = true
	return m, loginCmd(m.client, id, pw)
}

func (m loginModel) submitRegister() (loginModel, tea.Cmd) {
	req := api.RegisterRequest{
		EmployeeID:    strings.TrimSpace(m.inputs[authFieldID].Value()),
		EmployeeName:  strings.TrimSpace(m.inputs[authFieldName].Value()),
		OfficialEmail: strings.TrimSpace(m.inputs[authFieldEmail].Value()),
		Password:      m.inputs[authFieldPassword].Value(),
	}
	if req.EmployeeID == "" || req.OfficialEmail == "" || req.Password == "" {
		m.errMsg = "Please fill in Employee ID, email & password"
		return m, nil
	}
	m.errMsg = ""
	m.notice = ""
	m.submitting = true
	return m, registerCmd(m.client, req)
}

func loginCmd(client *api.Client, employeeID, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.Login(context.Background(), employeeID, password)
		return loginResultMsg{token: token, err: err}
	}
}

func registerCmd(client *api.Client, req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.Register(context.Background(), req)
		return registerResultMsg{msg: msg, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	title := "VY Portal — Login"
	if m.registering {
		title = "VY Portal — Register"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for _, f := range m.fieldOrder() {
		b.WriteString(authFieldLabels[f] + "\n")
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n\n")
	}

	switch {
	case m.submitting && m.registering:
		b.WriteString(subtleStyle.Render("Registering..."))
	case m.submitting:
		b.WriteString(subtleStyle.Render("Logging in..."))
	case m.registering:
		b.WriteString(subtleStyle.Render("enter: register · tab: next field · ctrl+r: back to login · ctrl+c: quit"))
	default:
		b.WriteString(subtleStyle.Render("enter: login · tab: next field · ctrl+r: register · ctrl+c: quit"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	return b.String()
}
