package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/attendance"
)

type clockTickMsg time.Time

type statusResultMsg struct {
	action attendance.Action
	err    error
}

type markResultMsg struct {
	outcome api.MarkOutcome
	err     error
}

// homeModel is the landing view: a live clock and the single attendance
// control driven by the state machine. Marking is disabled while the
// status query or a mark request is in flight, so no two identical
// requests ever overlap.
type homeModel struct {
	client    *api.Client
	machine   *attendance.Machine
	spin      spinner.Model
	clock     time.Time
	marking   bool
	statusErr string
	notice    string
}

func newHomeModel(client *api.Client) homeModel {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	return homeModel{
		client:  client,
		machine: attendance.NewMachine(),
		spin:    spin,
		clock:   time.Now(),
	}
}

// enterCmds are the effects fired whenever the home view (re)mounts: the
// status observation that seeds the machine plus the spinner ticker. The
// clock ticker is owned by the root model, not re-armed per entry.
func (m homeModel) enterCmds() tea.Cmd {
	return tea.Batch(statusCmd(m.client), m.spin.Tick)
}

func statusCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		action, err := client.AttendanceStatus(context.Background())
		return statusResultMsg{action: action, err: err}
	}
}

func markCmd(client *api.Client, mode attendance.Action) tea.Cmd {
	return func() tea.Msg {
		outcome, err := client.MarkToday(context.Background(), mode)
		return markResultMsg{outcome: outcome, err: err}
	}
}

func (m homeModel) typing() bool { return false }

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case statusResultMsg:
		if msg.err != nil {
			m.statusErr = userMessage(msg.err)
			return m, nil
		}
		m.statusErr = ""
		m.machine.Observe(msg.action)
		return m, nil

	case markResultMsg:
		m.marking = false
		if msg.err != nil {
			// Transport failure: state untouched, the user may retry.
			m.notice = userMessage(msg.err)
			return m, nil
		}
		switch msg.outcome {
		case api.MarkAccepted:
			m.notice = ""
			m.machine.MarkSucceeded()
		case api.MarkAlreadyApproved:
			m.notice = "Today's attendance was already approved."
			m.machine.MarkRejected(true)
		case api.MarkRejected:
			m.notice = "Attendance was not accepted. You can try again."
			m.machine.MarkRejected(false)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			if m.marking || !m.machine.CanMark() {
				return m, nil
			}
			m.marking = true
			m.notice = ""
			return m, markCmd(m.client, m.machine.Current())
		case "r":
			if m.statusErr != "" {
				m.statusErr = ""
				return m, statusCmd(m.client)
			}
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VY Portal — Home"))
	b.WriteString("\n\n")
	b.WriteString("Welcome! " + subtleStyle.Render(m.clock.Format("Mon, 02 Jan 2006 15:04:05")))
	b.WriteString("\n\n")

	switch {
	case m.statusErr != "":
		b.WriteString(errorStyle.Render(m.statusErr))
		b.WriteString("\n" + subtleStyle.Render("r: retry"))
	case m.marking:
		b.WriteString(m.spin.View() + " Marking attendance...")
	case m.machine.Current() == attendance.ActionUnknown:
		// Never a default button before the server has been heard from.
		b.WriteString(m.spin.View() + " Loading attendance status...")
	case m.machine.Current() == attendance.ActionCheckIn:
		b.WriteString(buttonStyle.Render("Check in") + subtleStyle.Render("  (enter)"))
	case m.machine.Current() == attendance.ActionCheckOut:
		b.WriteString(buttonStyle.Render("Check out") + subtleStyle.Render("  (enter)"))
	default:
		b.WriteString(doneStyle.Render("Done for today ✔"))
	}

	if m.notice != "" {
		b.WriteString("\n\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}
