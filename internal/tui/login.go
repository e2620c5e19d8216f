package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// loginModel is the login entry point.
type loginModel struct {
	inputs [loginFieldCount]textinput.Model
	focus  int
	errs   validate.Errors
	errMsg string
	flash  string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.CharLimit = 128
	email.Width = 40
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.Focus()

	password := textinput.New()
	password.CharLimit = 128
	password.Width = 40
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		inputs: [loginFieldCount]textinput.Model{email, password},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m loginModel) handleKey(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch msg.String() {
	case "tab", "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % loginFieldCount
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "ctrl+r":
		return m, func() tea.Msg { return navigateMsg{view: viewRegister} }

	case "ctrl+p":
		return m, func() tea.Msg { return navigateMsg{view: viewForgot} }
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := m.inputs[loginFieldEmail].Value()
	password := m.inputs[loginFieldPassword].Value()
	return m, func() tea.Msg {
		return loginSubmitMsg{email: email, password: password}
	}
}

// withError records a failed login for rendering.
func (m loginModel) withError(err error) loginModel {
	m.errs = nil
	m.errMsg = ""
	if verrs, ok := err.(validate.Errors); ok {
		m.errs = verrs
		return m
	}
	m.errMsg = err.Error()
	return m
}

func (m loginModel) updateInput(msg tea.Msg) (loginModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accentColor)),
	)
	toolName := indent.Render(zstyle.MutedText.Render("zforms"))

	s := fmt.Sprintf("\n%s\n%s\n\n", logo, toolName)
	s += "  " + zstyle.Title.Render("Welcome back") + "\n\n"

	labels := [loginFieldCount]string{"email", "password"}
	fields := [loginFieldCount]string{"email", "password"}
	for i := range loginFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", labels[i]))
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
		if msg, ok := m.errs[fields[i]]; ok {
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

	help := "enter login  ctrl+r register  ctrl+p forgot password  ctrl+c quit"
	s += "\n  " + zstyle.MutedText.Render(help) + "\n"
	return s
}
