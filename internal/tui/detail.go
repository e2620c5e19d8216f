package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/submission"
)

type detailField struct {
	label string
	value string
}

// detailModel displays all fields of a submission.
type detailModel struct {
	record submission.Submission
	fields []detailField
	cursor int
	flash  string
}

func newDetailModel(rec submission.Submission, admin bool) detailModel {
	fields := []detailField{
		{"id", rec.ID},
		{"first name", rec.FirstName},
		{"m.i.", rec.MiddleInitial},
		{"last name", rec.LastName},
		{"birth date", rec.BirthDate},
		{"gender", string(rec.Gender)},
		{"phone", rec.Phone},
		{"email", rec.Email},
		{"address", rec.Address},
		{"submitted", rec.SubmittedAt.Format("2006-01-02 15:04")},
	}
	if admin {
		fields = append(fields, detailField{"by", rec.SubmittedBy})
	}
	return detailModel{record: rec, fields: fields}
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if err := copyToClipboard(m.fields[m.cursor].value); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied!"
		return m, clearFlashAfter()
	}

	switch msg.String() {
	case "c":
		if err := copyToClipboard(m.allFieldsText()); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied all fields!"
		return m, clearFlashAfter()

	case "e":
		rec := m.record
		return m, func() tea.Msg { return editSubmissionMsg{record: rec} }

	case "d":
		rec := m.record
		return m, func() tea.Msg { return deleteRequestMsg{record: rec} }
	}

	return m, nil
}

func (m detailModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m detailModel) View() string {
	s := "\n"

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-12s", f.label))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
		}
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}
