package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	forgotFieldEmail = iota
	forgotFieldOld
	forgotFieldNew
	forgotFieldCount
)

var forgotFieldLabels = [forgotFieldCount]string{
	"email",
	"old password",
	"new password",
}

var forgotFieldKeys = [forgotFieldCount]string{
	"email",
	"old_password",
	"new_password",
}

// forgotModel is the password reset form.
type forgotModel struct {
	inputs [forgotFieldCount]textinput.Model
	focus  int
	errs   validate.Errors
	errMsg string
}

func newForgotModel() forgotModel {
	var inputs [forgotFieldCount]textinput.Model
	for i := range forgotFieldCount {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[forgotFieldOld].EchoMode = textinput.EchoPassword
	inputs[forgotFieldOld].EchoCharacter = '*'
	inputs[forgotFieldNew].EchoMode = textinput.EchoPassword
	inputs[forgotFieldNew].EchoCharacter = '*'

	m := forgotModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m forgotModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m forgotModel) Update(msg tea.Msg) (forgotModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m.updateInput(msg)
}

func (m forgotModel) handleKey(msg tea.KeyMsg) (forgotModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewLogin} }
	}

	switch msg.String() {
	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % forgotFieldCount
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + forgotFieldCount) % forgotFieldCount
		m.inputs[m.focus].Focus()
		return m, textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		email := m.inputs[forgotFieldEmail].Value()
		oldPW := m.inputs[forgotFieldOld].Value()
		newPW := m.inputs[forgotFieldNew].Value()
		return m, func() tea.Msg {
			return forgotSubmitMsg{email: email, oldPassword: oldPW, newPassword: newPW}
		}
	}

	return m.updateInput(msg)
}

// withError records a failed reset for rendering.
func (m forgotModel) withError(err error) forgotModel {
	m.errs = nil
	m.errMsg = ""
	if verrs, ok := err.(validate.Errors); ok {
		m.errs = verrs
		return m
	}
	m.errMsg = err.Error()
	return m
}

func (m forgotModel) updateInput(msg tea.Msg) (forgotModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m forgotModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("Reset your password — you will need to log in again") + "\n\n"

	for i := range forgotFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", forgotFieldLabels[i]))
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
		if msg, ok := m.errs[forgotFieldKeys[i]]; ok {
			s += "                  " + zstyle.StatusErr.Render(msg) + "\n"
		}
	}

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	}

	return s
}
