package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/user"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	profileFieldUsername = iota
	profileFieldEmail
	profileFieldPhone
	profileFieldLocation
	profileFieldCount
)

var profileFieldLabels = [profileFieldCount]string{
	"username",
	"email",
	"phone",
	"location",
}

var profileFieldKeys = [profileFieldCount]string{
	"username",
	"email",
	"phone_number",
	"location",
}

// profileModel edits the current user's profile.
type profileModel struct {
	inputs [profileFieldCount]textinput.Model
	focus  int
	errs   validate.Errors
	errMsg string
	flash  string
}

func newProfileModel(u user.User) profileModel {
	var inputs [profileFieldCount]textinput.Model
	for i := range profileFieldCount {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[profileFieldUsername].SetValue(u.Username)
	inputs[profileFieldEmail].SetValue(u.Email)
	inputs[profileFieldPhone].SetValue(u.PhoneNumber)
	inputs[profileFieldLocation].SetValue(u.Location)

	m := profileModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m profileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m profileModel) handleKey(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % profileFieldCount
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + profileFieldCount) % profileFieldCount
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		patch := user.ProfilePatch{
			Username:    m.inputs[profileFieldUsername].Value(),
			Email:       m.inputs[profileFieldEmail].Value(),
			PhoneNumber: m.inputs[profileFieldPhone].Value(),
			Location:    m.inputs[profileFieldLocation].Value(),
		}
		return m, func() tea.Msg { return profileSubmitMsg{patch: patch} }
	}

	return m.updateInput(msg)
}

// withError records a failed update for rendering.
func (m profileModel) withError(err error) profileModel {
	m.errs = nil
	m.errMsg = ""
	if verrs, ok := err.(validate.Errors); ok {
		m.errs = verrs
		return m
	}
	m.errMsg = err.Error()
	return m
}

func (m profileModel) updateInput(msg tea.Msg) (profileModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m profileModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("Update your details") + "\n\n"

	for i := range profileFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", profileFieldLabels[i]))
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
		if msg, ok := m.errs[profileFieldKeys[i]]; ok {
			s += "              " + zstyle.StatusErr.Render(msg) + "\n"
		}
	}

	s += "\n"
	switch {
	case m.errMsg != "":
		s += "  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	case m.flash != "":
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}
