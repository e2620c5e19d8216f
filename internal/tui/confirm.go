package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/submission"
)

// confirmModel asks before deleting a submission. Deletion cannot be
// undone, so it never runs on a single keypress.
type confirmModel struct {
	record submission.Submission
}

func newConfirmModel(rec submission.Submission) confirmModel {
	return confirmModel{record: rec}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch keyMsg.String() {
	case "y":
		id := m.record.ID
		return m, func() tea.Msg { return deleteConfirmedMsg{id: id} }

	case "n", "esc":
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	return m, nil
}

func (m confirmModel) View() string {
	name := m.record.FirstName + " " + m.record.LastName

	s := "\n  " + zstyle.StatusWarn.Render("delete this submission?") + "\n\n"
	s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("name "), name)
	s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("email"), m.record.Email)
	s += fmt.Sprintf("    %s %s\n", zstyle.MutedText.Render("date "), m.record.SubmittedAt.Format("2006-01-02"))
	s += "\n  " + zstyle.MutedText.Render("this action cannot be undone") + "\n"

	return s
}
