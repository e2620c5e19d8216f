package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/forms"
	"github.com/zarlcorp/zforms/internal/submission"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	formFieldFirst = iota
	formFieldMiddle
	formFieldLast
	formFieldBirth
	formFieldGender // cycled with space, not typed
	formFieldPhone
	formFieldEmail
	formFieldAddress
	formFieldCount
)

var formFieldLabels = [formFieldCount]string{
	"first name",
	"m.i.",
	"last name",
	"birth date",
	"gender",
	"phone",
	"email",
	"address",
}

var formFieldKeys = [formFieldCount]string{
	"first_name",
	"middle_initial",
	"last_name",
	"birth_date",
	"gender",
	"phone",
	"email",
	"address",
}

// formModel handles add/edit for a submission.
type formModel struct {
	inputs  [formFieldCount]textinput.Model
	focus   int
	gender  int // index into submission.Genders, -1 = unanswered
	editing bool
	editID  string
	errs    validate.Errors
	errMsg  string
	flash   string
}

func newFormModel(existing *submission.Submission) formModel {
	var inputs [formFieldCount]textinput.Model
	for i := range formFieldCount {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[formFieldMiddle].CharLimit = 1
	inputs[formFieldMiddle].Width = 4
	inputs[formFieldBirth].Placeholder = "1990-06-15"
	inputs[formFieldPhone].Placeholder = "9876543210"
	inputs[formFieldEmail].Placeholder = "you@example.com"

	m := formModel{inputs: inputs, gender: -1}

	if existing != nil {
		m.editing = true
		m.editID = existing.ID
		m.inputs[formFieldFirst].SetValue(existing.FirstName)
		m.inputs[formFieldMiddle].SetValue(existing.MiddleInitial)
		m.inputs[formFieldLast].SetValue(existing.LastName)
		m.inputs[formFieldBirth].SetValue(existing.BirthDate)
		m.inputs[formFieldPhone].SetValue(existing.Phone)
		m.inputs[formFieldEmail].SetValue(existing.Email)
		m.inputs[formFieldAddress].SetValue(existing.Address)
		for i, g := range submission.Genders {
			if g == existing.Gender {
				m.gender = i
			}
		}
	}

	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		if m.editing {
			return m, func() tea.Msg { return navigateMsg{view: viewList} }
		}
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab":
		return m.moveFocus(-1), textinput.Blink

	case " ":
		if m.focus == formFieldGender {
			m.gender = (m.gender + 1) % len(submission.Genders)
			return m, nil
		}
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	return m.updateInput(msg)
}

func (m formModel) moveFocus(delta int) formModel {
	if m.focus != formFieldGender {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + formFieldCount) % formFieldCount
	if m.focus != formFieldGender {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) submit() (formModel, tea.Cmd) {
	var gender submission.Gender
	if m.gender >= 0 {
		gender = submission.Genders[m.gender]
	}

	in := forms.Input{
		FirstName:     m.inputs[formFieldFirst].Value(),
		MiddleInitial: m.inputs[formFieldMiddle].Value(),
		LastName:      m.inputs[formFieldLast].Value(),
		BirthDate:     m.inputs[formFieldBirth].Value(),
		Gender:        gender,
		Phone:         m.inputs[formFieldPhone].Value(),
		Email:         m.inputs[formFieldEmail].Value(),
		Address:       m.inputs[formFieldAddress].Value(),
	}

	editID := m.editID
	return m, func() tea.Msg { return formSubmitMsg{editID: editID, input: in} }
}

// withError records a failed submit for rendering.
func (m formModel) withError(err error) formModel {
	m.errs = nil
	m.errMsg = ""
	if verrs, ok := err.(validate.Errors); ok {
		m.errs = verrs
		return m
	}
	m.errMsg = err.Error()
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.focus == formFieldGender {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	action := "new submission"
	if m.editing {
		action = "edit submission"
	}
	s := "\n  " + zstyle.Title.Render(action) + "\n\n"

	for i := range formFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", formFieldLabels[i]))

		var fieldView string
		if i == formFieldGender {
			if m.gender < 0 {
				fieldView = zstyle.MutedText.Render("(space to choose)")
			} else {
				fieldView = string(submission.Genders[m.gender])
			}
		} else {
			fieldView = m.inputs[i].View()
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, label, fieldView)
		if msg, ok := m.errs[formFieldKeys[i]]; ok {
			s += "                " + zstyle.StatusErr.Render(msg) + "\n"
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
