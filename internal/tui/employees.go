package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/employee"
)

type employeesResultMsg struct {
	employees []employee.Employee
	err       error
}

type employeeCreatedMsg struct {
	msg string
	err error
}

// employeesModel is the admin-only view: the company roster plus a small
// creation form. The root model never routes here for non-admin
// sessions.
type employeesModel struct {
	client   *api.Client
	list     remote[[]employee.Employee]
	creating bool
	saving   bool
	inputs   []textinput.Model
	focused  int
	notice   string
}

const (
	fieldEmployeeID = iota
	fieldName
	fieldEmail
	fieldRoleTitle
	fieldBasicSalary
	fieldHRA
	fieldAllowances
	fieldPassword
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Employee ID", "Full name", "Official email", "Role title",
	"Basic salary", "HRA", "Allowances", "Password",
}

func newEmployeesModel(client *api.Client) employeesModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Placeholder = fieldLabels[i]
		inputs[i] = ti
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	return employeesModel{client: client, inputs: inputs}
}

func (m employeesModel) typing() bool { return m.creating }

func (m employeesModel) load() (employeesModel, tea.Cmd) {
	m.list = loadingRemote[[]employee.Employee]()
	m.creating = false
	m.notice = ""
	return m, employeesCmd(m.client)
}

func employeesCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		employees, err := client.Employees(context.Background())
		return employeesResultMsg{employees: employees, err: err}
	}
}

func createEmployeeCmd(client *api.Client, req api.CreateEmployeeRequest) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.CreateEmployee(context.Background(), req)
		return employeeCreatedMsg{msg: msg, err: err}
	}
}

func (m employeesModel) Update(msg tea.Msg) (employeesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case employeesResultMsg:
		if msg.err != nil {
			m.list = failedRemote[[]employee.Employee](msg.err)
			return m, nil
		}
		m.list = succeededRemote(msg.employees)
		return m, nil

	case employeeCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = userMessage(msg.err)
			return m, nil
		}
		m.notice = msg.msg
		m.creating = false
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		// Refresh the roster so the new employee shows up.
		next, cmd := m.load()
		next.notice = m.notice
		return next, cmd

	case tea.KeyMsg:
		if m.creating {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "a":
			m.creating = true
			m.focused = 0
			m.notice = ""
			return m, m.inputs[0].Focus()
		case "r":
			return m.load()
		}
	}
	return m, nil
}

func (m employeesModel) updateForm(msg tea.KeyMsg) (employeesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		return m, nil
	case "tab", "down":
		return m.focusField((m.focused + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focused + fieldCount - 1) % fieldCount)
	case "enter":
		if m.focused < fieldCount-1 {
			return m.focusField(m.focused + 1)
		}
		if m.saving {
			return m, nil
		}
		req, err := m.buildRequest()
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.saving = true
		m.notice = ""
		return m, createEmployeeCmd(m.client, req)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m employeesModel) focusField(idx int) (employeesModel, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = idx
	return m, m.inputs[m.focused].Focus()
}

func (m employeesModel) buildRequest() (api.CreateEmployeeRequest, error) {
	get := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	req := api.CreateEmployeeRequest{
		EmployeeID:    get(fieldEmployeeID),
		EmployeeName:  get(fieldName),
		OfficialEmail: get(fieldEmail),
		RoleTitle:     get(fieldRoleTitle),
		Password:      m.inputs[fieldPassword].Value(),
	}
	if req.EmployeeID == "" || req.EmployeeName == "" || req.Password == "" {
		return req, fmt.Errorf("employee ID, name and password are required")
	}

	for _, f := range []struct {
		idx  int
		dest *int
	}{
		{fieldBasicSalary, &req.BasicSalary},
		{fieldHRA, &req.HRA},
		{fieldAllowances, &req.Allowances},
	} {
		raw := get(f.idx)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return req, fmt.Errorf("%s must be a non-negative number", fieldLabels[f.idx])
		}
		*f.dest = v
	}
	return req, nil
}

func (m employeesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VY Portal — Employees"))
	b.WriteString("\n\n")

	switch {
	case m.list.loading() || m.list.idle():
		b.WriteString(subtleStyle.Render("Loading employees..."))
		return b.String()
	case m.list.failed():
		b.WriteString(errorStyle.Render(userMessage(m.list.err)))
		b.WriteString("\n" + subtleStyle.Render("r: retry"))
		return b.String()
	}

	if m.creating {
		b.WriteString("New employee\n\n")
		for i, input := range m.inputs {
			cursor := "  "
			if i == m.focused {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-15s %s\n", cursor, fieldLabels[i], input.View()))
		}
		b.WriteString("\n")
		if m.saving {
			b.WriteString(subtleStyle.Render("Creating..."))
		} else {
			b.WriteString(subtleStyle.Render("tab: next field · enter on last field: create · esc: cancel"))
		}
	} else {
		b.WriteString(fmt.Sprintf("%-8s %-22s %-28s %s\n", "ID", "Name", "Email", "Role"))
		b.WriteString(subtleStyle.Render(strings.Repeat("─", 72)))
		b.WriteString("\n")
		for _, e := range m.list.data {
			b.WriteString(fmt.Sprintf("%-8s %-22s %-28s %s\n",
				e.EmployeeID, e.EmployeeName, e.OfficialEmail, e.RoleTitle))
		}
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render("a: add employee · r: reload"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}
