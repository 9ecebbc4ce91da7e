package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")).
			Padding(0, 3)

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241")).
			Padding(0, 3)

	weekdayStyle = lipgloss.NewStyle().
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("69"))

	cellBase = lipgloss.NewStyle().
			Width(cellWidth).
			Height(2).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder())

	presentCell = cellBase.BorderForeground(lipgloss.Color("28")).Foreground(lipgloss.Color("40"))
	absentCell  = cellBase.BorderForeground(lipgloss.Color("124")).Foreground(lipgloss.Color("196"))
	offCell     = cellBase.BorderForeground(lipgloss.Color("94")).Foreground(lipgloss.Color("178"))
	neutralCell = cellBase.BorderForeground(lipgloss.Color("238")).Foreground(lipgloss.Color("245"))
	emptyCell   = lipgloss.NewStyle().Width(cellWidth + 2).Height(4)

	legendPresent = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	legendAbsent  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	legendOff     = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
)

const cellWidth = 9
