package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// policiesModel is the static HR policy reference page. It holds no
// state and issues no requests.
type policiesModel struct{}

func (policiesModel) typing() bool { return false }

func (m policiesModel) Update(tea.Msg) (policiesModel, tea.Cmd) { return m, nil }

type policy struct {
	title string
	body  string
}

var hrPolicies = []policy{
	{"Working hours", "Standard hours are 9:30 to 18:30, Monday through Friday. Check in and out daily from the Home view; unmarked weekdays count as absence."},
	{"Leave", "Casual and sick leave accrue at 1.5 days per month. Apply to your reporting manager at least two working days in advance, except in emergencies."},
	{"Remote work", "Up to two remote days per week with prior manager approval. Attendance marking applies on remote days as usual."},
	{"Code of conduct", "Treat colleagues with respect. Harassment or discrimination of any kind leads to disciplinary action up to termination."},
	{"Data privacy", "Employee records are visible to HR administrators only. Report suspected data exposure to the HR desk immediately."},
}

func (policiesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VY Portal — HR Policies"))
	b.WriteString("\n\n")

	for _, p := range hrPolicies {
		b.WriteString(headingStyle.Render(p.title))
		b.WriteString("\n")
		b.WriteString(p.body)
		b.WriteString("\n\n")
	}

	b.WriteString(subtleStyle.Render("These summaries are informational; the HR desk holds the authoritative documents."))
	return b.String()
}
