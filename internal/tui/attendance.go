package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/attendance"
	"github.com/vy-hr/portal-go/internal/domain/calendar"
)

// monthResultMsg carries the generation of the query that produced it;
// the model drops results from superseded generations so a slow response
// for a month the user already navigated away from cannot clobber the
// fresh one.
type monthResultMsg struct {
	gen  int
	days []attendance.DayRecord
	err  error
}

type attendanceModel struct {
	client *api.Client
	year   int
	month  int
	gen    int
	days   remote[[]attendance.DayRecord]
}

func newAttendanceModel(client *api.Client) attendanceModel {
	now := time.Now()
	return attendanceModel{
		client: client,
		year:   now.Year(),
		month:  int(now.Month()),
	}
}

func (m attendanceModel) typing() bool { return false }

// load bumps the generation and queries the selected month.
func (m attendanceModel) load() (attendanceModel, tea.Cmd) {
	m.gen++
	m.days = loadingRemote[[]attendance.DayRecord]()
	return m, monthCmd(m.client, m.gen, m.year, m.month)
}

func monthCmd(client *api.Client, gen, year, month int) tea.Cmd {
	return func() tea.Msg {
		days, err := client.MonthAttendance(context.Background(), year, month)
		return monthResultMsg{gen: gen, days: days, err: err}
	}
}

func (m attendanceModel) Update(msg tea.Msg) (attendanceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case monthResultMsg:
		if msg.gen != m.gen {
			return m, nil // stale response for an abandoned query
		}
		if msg.err != nil {
			m.days = failedRemote[[]attendance.DayRecord](msg.err)
		} else {
			m.days = succeededRemote(msg.days)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			m.month--
			if m.month < 1 {
				m.month = 12
				m.year--
			}
			return m.load()
		case "right":
			m.month++
			if m.month > 12 {
				m.month = 1
				m.year++
			}
			return m.load()
		case "up":
			m.year++
			return m.load()
		case "down":
			m.year--
			return m.load()
		case "r":
			return m.load()
		}
	}
	return m, nil
}

var weekDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m attendanceModel) View() string {
	var b strings.Builder
	monthName := time.Month(m.month).String()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Attendance — %s %d", monthName, m.year)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("←/→: month · ↑/↓: year · r: reload"))
	b.WriteString("\n\n")

	switch {
	case m.days.loading() || m.days.idle():
		b.WriteString(subtleStyle.Render("Loading attendance..."))
		return b.String()
	case m.days.failed():
		b.WriteString(errorStyle.Render(userMessage(m.days.err)))
		return b.String()
	}

	header := make([]string, len(weekDays))
	for i, day := range weekDays {
		header[i] = weekdayStyle.Render(day)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	cells := calendar.BuildMonthGrid(m.year, m.month, m.days.data)
	for start := 0; start < len(cells); start += 7 {
		row := make([]string, 0, 7)
		for _, cell := range cells[start : start+7] {
			row = append(row, renderCell(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(legendPresent.Render("■ Present"))
	b.WriteString("  ")
	b.WriteString(legendAbsent.Render("■ Absent"))
	b.WriteString("  ")
	b.WriteString(legendOff.Render("■ Weekly Off"))
	return b.String()
}

func renderCell(cell calendar.Cell) string {
	if !cell.IsDay() {
		return emptyCell.Render("")
	}

	label, style := statusInfo(cell.Record.Status)
	content := fmt.Sprintf("%d\n%s", cell.Record.Day, label)
	return style.Render(content)
}

func statusInfo(status attendance.DayStatus) (string, lipgloss.Style) {
	switch status {
	case attendance.StatusPresent:
		return "Present", presentCell
	case attendance.StatusAbsent:
		return "Absent", absentCell
	case attendance.StatusWeeklyOff:
		return "Off", offCell
	default:
		return "—", neutralCell
	}
}
