package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/auth"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	regFieldUsername = iota
	regFieldEmail
	regFieldPassword
	regFieldConfirm
	regFieldPhone
	regFieldLocation
	regFieldCount
)

// regFieldTerms is the focus slot after the text inputs; space toggles it.
const regFieldTerms = regFieldCount

var regFieldLabels = [regFieldCount]string{
	"username",
	"email",
	"password",
	"confirm",
	"phone",
	"location",
}

// regFieldKeys maps inputs to schema field names for inline errors.
var regFieldKeys = [regFieldCount]string{
	"username",
	"email",
	"password",
	"confirm_password",
	"phone_number",
	"location",
}

// registerModel is the account registration form.
type registerModel struct {
	inputs      [regFieldCount]textinput.Model
	focus       int
	acceptTerms bool
	errs        validate.Errors
	errMsg      string
}

func newRegisterModel() registerModel {
	var inputs [regFieldCount]textinput.Model
	for i := range regFieldCount {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[regFieldEmail].Placeholder = "you@example.com"
	inputs[regFieldPhone].Placeholder = "9876543210"
	inputs[regFieldPassword].EchoMode = textinput.EchoPassword
	inputs[regFieldPassword].EchoCharacter = '*'
	inputs[regFieldConfirm].EchoMode = textinput.EchoPassword
	inputs[regFieldConfirm].EchoCharacter = '*'

	m := registerModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m.updateInput(msg)
}

func (m registerModel) handleKey(msg tea.KeyMsg) (registerModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewLogin} }
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab":
		return m.moveFocus(-1), textinput.Blink

	case "ctrl+g":
		// suggest a generated password for both password fields
		pw := zcrypto.GeneratePassword(12)
		m.inputs[regFieldPassword].SetValue(pw)
		m.inputs[regFieldConfirm].SetValue(pw)
		m.inputs[regFieldPassword].EchoMode = textinput.EchoNormal
		m.inputs[regFieldConfirm].EchoMode = textinput.EchoNormal
		return m, nil

	case " ":
		if m.focus == regFieldTerms {
			m.acceptTerms = !m.acceptTerms
			return m, nil
		}
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m registerModel) moveFocus(delta int) registerModel {
	if m.focus < regFieldCount {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + regFieldCount + 1) % (regFieldCount + 1)
	if m.focus < regFieldCount {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	in := auth.RegisterInput{
		Username:        m.inputs[regFieldUsername].Value(),
		Email:           m.inputs[regFieldEmail].Value(),
		Password:        m.inputs[regFieldPassword].Value(),
		ConfirmPassword: m.inputs[regFieldConfirm].Value(),
		PhoneNumber:     m.inputs[regFieldPhone].Value(),
		Location:        m.inputs[regFieldLocation].Value(),
		AcceptTerms:     m.acceptTerms,
	}
	return m, func() tea.Msg { return registerSubmitMsg{input: in} }
}

// withError records a failed registration for rendering.
func (m registerModel) withError(err error) registerModel {
	m.errs = nil
	m.errMsg = ""
	if verrs, ok := err.(validate.Errors); ok {
		m.errs = verrs
		return m
	}
	m.errMsg = err.Error()
	return m
}

func (m registerModel) updateInput(msg tea.Msg) (registerModel, tea.Cmd) {
	if m.focus >= regFieldCount {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m registerModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("Register with your personal details") + "\n\n"

	for i := range regFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", regFieldLabels[i]))
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
		if msg, ok := m.errs[regFieldKeys[i]]; ok {
			s += "              " + zstyle.StatusErr.Render(msg) + "\n"
		}
	}

	// terms checkbox
	cursor := "  "
	if m.focus == regFieldTerms {
		cursor = "> "
	}
	check := "[ ]"
	if m.acceptTerms {
		check = "[x]"
	}
	s += fmt.Sprintf("\n  %s%s %s\n", cursor, check, "I accept the terms")
	if msg, ok := m.errs["terms"]; ok {
		s += "       " + zstyle.StatusErr.Render(msg) + "\n"
	}

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg) + "\n"
	}

	return s
}
