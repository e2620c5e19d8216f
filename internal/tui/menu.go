package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/user"
)

type menuChoice int

const (
	menuSubmit menuChoice = iota
	menuBrowse
	menuProfile
	menuLogout
	menuQuit
)

var menuItems = []string{
	"Submit a form",
	"Browse submissions",
	"Edit profile",
	"Log out",
	"Quit",
}

// menuModel is the main menu view.
type menuModel struct {
	cursor          int
	version         string
	current         user.User
	submissionCount int
}

func newMenuModel(version string, current user.User) menuModel {
	return menuModel{version: version, current: current}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(keyMsg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(keyMsg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(keyMsg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuSubmit:
		return func() tea.Msg { return navigateMsg{view: viewForm} }
	case menuBrowse:
		return func() tea.Msg { return navigateMsg{view: viewList} }
	case menuProfile:
		return func() tea.Msg { return navigateMsg{view: viewProfile} }
	case menuLogout:
		return func() tea.Msg { return logoutMsg{} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accentColor)),
	)

	title := zstyle.Title.Render("zforms")
	ver := zstyle.MutedText.Render(m.version)

	who := m.current.Username
	if m.current.IsAdmin() {
		who += " (admin)"
	}

	s := fmt.Sprintf("\n%s\n\n  %s %s\n", logo, title, ver)
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%s — %d submissions", who, m.submissionCount)) + "\n\n"

	for i, item := range menuItems {
		cursor := "  "
		if m.cursor == i {
			s += zstyle.Highlight.Render(fmt.Sprintf("  %s> %s", cursor, item)) + "\n"
		} else {
			s += fmt.Sprintf("  %s  %s\n", cursor, item)
		}
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
