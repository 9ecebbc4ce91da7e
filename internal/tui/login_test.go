package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vy-hr/portal-go/internal/api"
)

func newTestLogin() loginModel {
	return newLoginModel(api.NewClient("http://127.0.0.1:0", nil))
}

func TestLogin_ValidatesRequiredFields(t *testing.T) {
	m := newTestLogin()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Please enter Employee ID & Password", m.errMsg)
}

func TestLogin_RegisterToggle(t *testing.T) {
	m := newTestLogin()
	require.NotContains(t, m.View(), "Full name")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.registering)
	assert.Contains(t, m.View(), "Register")
	assert.Contains(t, m.View(), "Full name")
	assert.Contains(t, m.View(), "Official email")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, m.registering)
	assert.NotContains(t, m.View(), "Full name")
}

// The login form must skip the register-only fields; the register form
// walks all four.
func TestLogin_TabOrderPerMode(t *testing.T) {
	m := newTestLogin()
	require.Equal(t, authFieldID, m.focused)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, authFieldPassword, m.focused)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, authFieldID, m.focused)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	for _, want := range []int{authFieldName, authFieldEmail, authFieldPassword, authFieldID} {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, want, m.focused)
	}
}

func TestLogin_RegisterValidatesRequiredFields(t *testing.T) {
	m := newTestLogin()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Please fill in Employee ID, email & password", m.errMsg)
}

func TestLogin_RegisterSubmitFiresRequest(t *testing.T) {
	m := newTestLogin()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.inputs[authFieldID].SetValue("VY010")
	m.inputs[authFieldName].SetValue("New Hire")
	m.inputs[authFieldEmail].SetValue("new.hire@company.example")
	m.inputs[authFieldPassword].SetValue("secret123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.submitting)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Registering...")
}

func TestLogin_RegisterSuccessReturnsToLogin(t *testing.T) {
	m := newTestLogin()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.inputs[authFieldPassword].SetValue("secret123")
	m.submitting = true

	m, _ = m.Update(registerResultMsg{msg: "Registered successfully"})
	assert.False(t, m.registering)
	assert.False(t, m.submitting)
	assert.Equal(t, authFieldID, m.focused)
	assert.Empty(t, m.inputs[authFieldPassword].Value())
	assert.Contains(t, m.View(), "Registered successfully")
	assert.Contains(t, m.View(), "Login")
}

func TestLogin_RegisterFailureStaysOnForm(t *testing.T) {
	m := newTestLogin()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m.submitting = true

	m, _ = m.Update(registerResultMsg{err: &api.APIError{Status: 409, Msg: "Employee already registered"}})
	assert.True(t, m.registering)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Employee already registered")
}
