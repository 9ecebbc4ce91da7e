package tui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vy-hr/portal-go/internal/api"
	"github.com/vy-hr/portal-go/internal/domain/employee"
)

type profileResultMsg struct {
	profile *employee.Employee
	err     error
}

type profileSavedMsg struct {
	msg string
	err error
}

type photoUploadedMsg struct {
	url string
	err error
}

type profileModel struct {
	client    *api.Client
	profile   remote[*employee.Employee]
	contact   textinput.Model
	photo     textinput.Model
	editing   bool
	photoMode bool
	saving    bool
	uploading bool
	notice    string
}

func newProfileModel(client *api.Client) profileModel {
	contact := textinput.New()
	contact.Placeholder = "mobile number"
	contact.CharLimit = 20

	photo := textinput.New()
	photo.Placeholder = "/path/to/photo.png"
	photo.CharLimit = 255

	return profileModel{client: client, contact: contact, photo: photo}
}

func (m profileModel) typing() bool { return m.editing || m.photoMode }

func (m profileModel) load() (profileModel, tea.Cmd) {
	m.profile = loadingRemote[*employee.Employee]()
	m.editing = false
	m.photoMode = false
	m.notice = ""
	return m, profileCmd(m.client)
}

func profileCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		profile, err := client.Profile(context.Background())
		return profileResultMsg{profile: profile, err: err}
	}
}

func saveProfileCmd(client *api.Client, contactNumber string) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.UpdateProfile(context.Background(), api.UpdateProfileRequest{
			ContactNumber: contactNumber,
		})
		return profileSavedMsg{msg: msg, err: err}
	}
}

// uploadPhotoCmd reads a local file and posts it as the profile photo.
func uploadPhotoCmd(client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return photoUploadedMsg{err: err}
		}
		defer f.Close()

		url, err := client.UploadPhoto(context.Background(), filepath.Base(path), f)
		return photoUploadedMsg{url: url, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileResultMsg:
		if msg.err != nil {
			m.profile = failedRemote[*employee.Employee](msg.err)
			return m, nil
		}
		m.profile = succeededRemote(msg.profile)
		m.contact.SetValue(msg.profile.ContactNumber)
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = userMessage(msg.err)
			// Roll the input back to the last server-confirmed value.
			if m.profile.ready() {
				m.contact.SetValue(m.profile.data.ContactNumber)
			}
			return m, nil
		}
		m.editing = false
		m.contact.Blur()
		if m.profile.ready() {
			m.profile.data.ContactNumber = m.contact.Value()
		}
		m.notice = msg.msg
		if m.notice == "" {
			m.notice = "Profile updated successfully"
		}
		return m, nil

	case photoUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			var pathErr *fs.PathError
			if errors.As(msg.err, &pathErr) {
				m.notice = "Could not read the photo file."
			} else {
				m.notice = userMessage(msg.err)
			}
			return m, nil
		}
		m.photoMode = false
		m.photo.Blur()
		m.photo.SetValue("")
		if m.profile.ready() {
			m.profile.data.ProfilePhotoURL = msg.url
		}
		m.notice = "Profile photo updated"
		return m, nil

	case tea.KeyMsg:
		if !m.profile.ready() {
			if msg.String() == "r" && m.profile.failed() {
				return m.load()
			}
			return m, nil
		}

		if m.photoMode {
			switch msg.String() {
			case "enter":
				if m.uploading {
					return m, nil
				}
				path := strings.TrimSpace(m.photo.Value())
				if path == "" {
					m.notice = "Please enter a photo file path"
					return m, nil
				}
				m.uploading = true
				m.notice = ""
				return m, uploadPhotoCmd(m.client, path)
			case "esc":
				m.photoMode = false
				m.photo.Blur()
				m.photo.SetValue("")
				return m, nil
			default:
				var cmd tea.Cmd
				m.photo, cmd = m.photo.Update(msg)
				return m, cmd
			}
		}

		if m.editing {
			switch msg.String() {
			case "enter":
				if m.saving {
					return m, nil
				}
				m.saving = true
				m.notice = ""
				return m, saveProfileCmd(m.client, strings.TrimSpace(m.contact.Value()))
			case "esc":
				m.editing = false
				m.contact.Blur()
				m.contact.SetValue(m.profile.data.ContactNumber)
				return m, nil
			default:
				var cmd tea.Cmd
				m.contact, cmd = m.contact.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "e":
			m.editing = true
			m.notice = ""
			return m, m.contact.Focus()
		case "p":
			m.photoMode = true
			m.notice = ""
			return m, m.photo.Focus()
		case "r":
			return m.load()
		}
	}
	return m, nil
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VY Portal — Profile"))
	b.WriteString("\n\n")

	switch {
	case m.profile.loading() || m.profile.idle():
		b.WriteString(subtleStyle.Render("Loading profile..."))
		return b.String()
	case m.profile.failed():
		b.WriteString(errorStyle.Render(userMessage(m.profile.err)))
		b.WriteString("\n" + subtleStyle.Render("r: retry"))
		return b.String()
	}

	p := m.profile.data
	active := "Inactive"
	if p.IsActive {
		active = "Active"
	}

	b.WriteString(fmt.Sprintf("%s\n", p.EmployeeName))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("%s · %s · %s", p.EmployeeID, p.RoleTitle, active)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Official Email  %s\n", p.OfficialEmail))
	b.WriteString(fmt.Sprintf("Basic Salary    ₹ %d\n", p.BasicSalary))
	b.WriteString(fmt.Sprintf("HRA             ₹ %d\n", p.HRA))
	b.WriteString(fmt.Sprintf("Allowances      ₹ %d\n", p.Allowances))

	b.WriteString("\nContact Number  ")
	switch {
	case m.editing:
		b.WriteString(m.contact.View())
	case p.ContactNumber == "":
		b.WriteString(subtleStyle.Render("(not set)"))
	default:
		b.WriteString(p.ContactNumber)
	}

	b.WriteString("\nProfile Photo   ")
	switch {
	case m.photoMode:
		b.WriteString(m.photo.View())
	case p.ProfilePhotoURL == "":
		b.WriteString(subtleStyle.Render("(none)"))
	default:
		b.WriteString(p.ProfilePhotoURL)
	}

	b.WriteString("\n\n")
	switch {
	case m.saving:
		b.WriteString(subtleStyle.Render("Saving..."))
	case m.uploading:
		b.WriteString(subtleStyle.Render("Uploading photo..."))
	case m.editing:
		b.WriteString(subtleStyle.Render("enter: save · esc: cancel"))
	case m.photoMode:
		b.WriteString(subtleStyle.Render("enter: upload · esc: cancel"))
	default:
		b.WriteString(subtleStyle.Render("e: edit contact number · p: upload photo · r: reload"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}
	return b.String()
}
