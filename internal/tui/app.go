package tui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/session"
	"github.com/vy-hr/portal-go/internal/pkg/tokenstore"
)

type viewID int

const (
	viewLogin viewID = iota
	viewHome
	viewAttendance
	viewProfile
	viewPolicies
	viewEmployees
)

// App is the root model. It owns the session gate: no decodable
// credential means the login view and nothing else is rendered; a
// decodable one opens the protected views, with the admin roster gated
// separately on the role claim.
type App struct {
	client *api.Client
	tokens *tokenstore.Store

	sess session.Session
	view viewID

	login     loginModel
	home      homeModel
	attend    attendanceModel
	profile   profileModel
	policies  policiesModel
	employees employeesModel

	notice string
	width  int
	height int
}

func NewApp(client *api.Client, tokens *tokenstore.Store) App {
	app := App{
		client: client,
		tokens: tokens,
		login:  newLoginModel(client),
	}
	app.resetProtected()
	app.sess = session.Authorize(tokens.Load())
	if app.sess.Authenticated() {
		app.view = viewHome
	} else {
		app.view = viewLogin
	}
	return app
}

// resetProtected rebuilds every protected view from scratch. Runs on
// login and logout so nothing leaks between sessions.
func (a *App) resetProtected() {
	a.home = newHomeModel(a.client)
	a.attend = newAttendanceModel(a.client)
	a.profile = newProfileModel(a.client)
	a.policies = policiesModel{}
	a.employees = newEmployeesModel(a.client)
}

func (a App) Init() tea.Cmd {
	if a.view == viewHome {
		return tea.Batch(tickClock(), a.home.enterCmds())
	}
	return tea.Batch(tickClock(), textinput.Blink)
}

// tickClock drives the live clock. The root model owns the single tick
// chain and re-arms it once per message, so view switches never stack a
// second ticker.
func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case loginResultMsg:
		if msg.err == nil {
			return a.completeLogin(msg.token)
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case registerResultMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd

	case clockTickMsg:
		a.home, _ = a.home.Update(msg)
		return a, tickClock()

	// Async results go to their owning view even if the user has
	// already navigated elsewhere.
	case statusResultMsg, markResultMsg, spinner.TickMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		return a, cmd
	case monthResultMsg:
		var cmd tea.Cmd
		a.attend, cmd = a.attend.Update(msg)
		return a, cmd
	case profileResultMsg, profileSavedMsg, photoUploadedMsg:
		var cmd tea.Cmd
		a.profile, cmd = a.profile.Update(msg)
		return a, cmd
	case employeesResultMsg, employeeCreatedMsg:
		var cmd tea.Cmd
		a.employees, cmd = a.employees.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.view != viewLogin && !a.activeTyping() {
			if next, cmd, handled := a.handleNavKey(msg.String()); handled {
				return next, cmd
			}
		}
	}

	return a.routeToActive(msg)
}

func (a App) activeTyping() bool {
	switch a.view {
	case viewProfile:
		return a.profile.typing()
	case viewEmployees:
		return a.employees.typing()
	default:
		return false
	}
}

func (a App) handleNavKey(key string) (tea.Model, tea.Cmd, bool) {
	a.notice = ""
	switch key {
	case "q":
		return a, tea.Quit, true
	case "1":
		a.view = viewHome
		return a, a.home.enterCmds(), true
	case "2":
		a.view = viewAttendance
		var cmd tea.Cmd
		a.attend, cmd = a.attend.load()
		return a, cmd, true
	case "3":
		a.view = viewProfile
		var cmd tea.Cmd
		a.profile, cmd = a.profile.load()
		return a, cmd, true
	case "4":
		a.view = viewPolicies
		return a, nil, true
	case "5":
		if !a.sess.IsAdmin() {
			// Logged in but not privileged: neutral landing, not the
			// login screen.
			a.view = viewHome
			a.notice = "Admin access is required for the employees view."
			return a, nil, true
		}
		a.view = viewEmployees
		var cmd tea.Cmd
		a.employees, cmd = a.employees.load()
		return a, cmd, true
	case "l":
		return a.logout()
	}
	return a, nil, false
}

func (a App) completeLogin(token string) (tea.Model, tea.Cmd) {
	if err := a.tokens.Save(token); err != nil {
		slog.Error("failed to persist credential", "error", err)
	}

	a.sess = session.Authorize(token)
	if !a.sess.Authenticated() {
		// The server handed back something the decoder rejects; treat it
		// like a failed login rather than entering a broken session.
		a.login.submitting = false
		a.login.errMsg = "Login failed. Please try again."
		_ = a.tokens.Clear()
		return a, nil
	}

	a.resetProtected()
	a.login = newLoginModel(a.client)
	a.view = viewHome
	return a, a.home.enterCmds()
}

func (a App) logout() (tea.Model, tea.Cmd, bool) {
	if err := a.tokens.Clear(); err != nil {
		slog.Error("failed to clear credential", "error", err)
	}
	a.sess = session.Session{Status: session.Unauthenticated}
	a.resetProtected()
	a.login = newLoginModel(a.client)
	a.view = viewLogin
	return a, textinput.Blink, true
}

func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewHome:
		a.home, cmd = a.home.Update(msg)
	case viewAttendance:
		a.attend, cmd = a.attend.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	case viewPolicies:
		a.policies, cmd = a.policies.Update(msg)
	case viewEmployees:
		a.employees, cmd = a.employees.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	// The gate: nothing from the protected subtree renders without an
	// authorized session.
	if !a.sess.Authenticated() {
		return a.login.View() + "\n"
	}

	var b strings.Builder
	switch a.view {
	case viewHome:
		b.WriteString(a.home.View())
	case viewAttendance:
		b.WriteString(a.attend.View())
	case viewProfile:
		b.WriteString(a.profile.View())
	case viewPolicies:
		b.WriteString(a.policies.View())
	case viewEmployees:
		b.WriteString(a.employees.View())
	}

	b.WriteString("\n\n")
	nav := "1 Home · 2 Attendance · 3 Profile · 4 Policies"
	if a.sess.IsAdmin() {
		nav += " · 5 Employees"
	}
	nav += " · l Logout · q Quit"
	b.WriteString(subtleStyle.Render(nav))

	if a.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(a.notice))
	}
	b.WriteString("\n")
	return b.String()
}

// userMessage maps client errors to what the user should read. Server
// rejections surface their msg field; everything transport-shaped gets
// the generic retryable line.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Msg
	}
	if errors.Is(err, api.ErrNoCredential) {
		return "Please login again."
	}
	return "Something went wrong. Please try again."
}
