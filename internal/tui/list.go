package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/submission"
)

// listModel displays the submissions visible to the current user.
type listModel struct {
	records []submission.Submission
	admin   bool
	cursor  int
	flash   string
}

func newListModel(records []submission.Submission, admin bool) listModel {
	return listModel{records: records, admin: admin}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.records) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		rec := m.records[m.cursor]
		return m, func() tea.Msg { return viewSubmissionMsg{record: rec} }
	}

	switch msg.String() {
	case "e":
		rec := m.records[m.cursor]
		return m, func() tea.Msg { return editSubmissionMsg{record: rec} }

	case "d":
		rec := m.records[m.cursor]
		return m, func() tea.Msg { return deleteRequestMsg{record: rec} }
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	s := "\n"

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("no submissions yet") + "\n"
		if m.flash != "" {
			s += "\n  " + zstyle.StatusWarn.Render(m.flash) + "\n"
		}
		return s
	}

	s += "  " + accentStyle.Render(fmt.Sprintf("(%d) submissions", len(m.records))) + "\n\n"

	for i, rec := range m.records {
		name := rec.FirstName + " " + rec.LastName
		line := fmt.Sprintf("%-24s %-28s %s",
			name,
			rec.Email,
			rec.SubmittedAt.Format("2006-01-02"),
		)
		if m.admin {
			line += "  " + zstyle.MutedText.Render("by "+rec.SubmittedBy)
		}

		if i == m.cursor {
			s += zstyle.Highlight.Render("  > "+line) + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	if m.flash != "" {
		s += "\n  " + zstyle.StatusWarn.Render(m.flash) + "\n"
	}

	return s
}
