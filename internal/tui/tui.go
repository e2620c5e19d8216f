// Package tui implements the root Bubble Tea model for zforms.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforms/internal/auth"
	"github.com/zarlcorp/zforms/internal/forms"
	"github.com/zarlcorp/zforms/internal/submission"
	"github.com/zarlcorp/zforms/internal/user"
)

// accentColor is the zforms accent used in headers and highlights.
var accentColor = lipgloss.Color("75")

type viewID int

const (
	viewLogin viewID = iota
	viewRegister
	viewForgot
	viewMenu
	viewProfile
	viewForm
	viewList
	viewDetail
	viewConfirmDelete
)

// Model is the root TUI model. Views dispatch intent messages; the root
// calls into the auth and forms services and re-renders from their state.
type Model struct {
	version string
	auth    *auth.Service
	forms   *forms.Service

	active   viewID
	login    loginModel
	register registerModel
	forgot   forgotModel
	menu     menuModel
	profile  profileModel
	form     formModel
	list     listModel
	detail   detailModel
	confirm  confirmModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root model. A restored session skips the login view.
func New(version string, authSvc *auth.Service, formSvc *forms.Service) Model {
	m := Model{
		version: version,
		auth:    authSvc,
		forms:   formSvc,
		active:  viewLogin,
		login:   newLoginModel(),
	}
	if authSvc.IsAuthenticated() {
		u := currentOrZero(authSvc)
		mm := newMenuModel(version, u)
		mm.submissionCount = len(formSvc.VisibleTo(u))
		m.menu = mm
		m.active = viewMenu
	}
	return m
}

func currentOrZero(authSvc *auth.Service) user.User {
	u, _ := authSvc.CurrentUser()
	return u
}

func (m Model) Init() tea.Cmd {
	if m.active == viewLogin {
		return m.login.Init()
	}
	return m.menu.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case loginSubmitMsg:
		return m.handleLogin(msg)

	case registerSubmitMsg:
		return m.handleRegister(msg)

	case forgotSubmitMsg:
		return m.handleForgot(msg)

	case profileSubmitMsg:
		return m.handleProfile(msg)

	case formSubmitMsg:
		return m.handleFormSubmit(msg)

	case viewSubmissionMsg:
		m.detail = newDetailModel(msg.record, m.isAdmin())
		m.active = viewDetail
		return m, nil

	case editSubmissionMsg:
		m.form = newFormModel(&msg.record)
		m.active = viewForm
		return m, m.form.Init()

	case deleteRequestMsg:
		m.confirm = newConfirmModel(msg.record)
		m.active = viewConfirmDelete
		return m, nil

	case deleteConfirmedMsg:
		return m.handleDelete(msg.id)

	case logoutMsg:
		m.auth.Logout()
		m.login = newLoginModel()
		m.login.flash = "logged out"
		m.active = viewLogin
		return m, tea.Batch(m.login.Init(), tea.ClearScreen)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// login and menu include the logo — render directly
	switch m.active {
	case viewLogin:
		return m.login.View()
	case viewMenu:
		return m.menu.View()
	}

	// all other views: header + separator + content + footer
	var content string
	switch m.active {
	case viewRegister:
		content = m.register.View()
	case viewForgot:
		content = m.forgot.View()
	case viewProfile:
		content = m.profile.View()
	case viewForm:
		content = m.form.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	case viewConfirmDelete:
		content = m.confirm.View()
	}

	header := zstyle.RenderHeader("zforms", viewTitle(m.active), accentColor)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewRegister:
		return "Create an Account"
	case viewForgot:
		return "Reset Password"
	case viewProfile:
		return "Profile"
	case viewForm:
		return "Submit Your Details"
	case viewList:
		return "Submissions"
	case viewDetail:
		return "Submission"
	case viewConfirmDelete:
		return "Delete Submission"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewRegister:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "space", Desc: "toggle terms"},
			{Key: "ctrl+g", Desc: "suggest password"},
			{Key: "enter", Desc: "register"},
			{Key: "esc", Desc: "back"},
		}
	case viewForgot:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "reset"},
			{Key: "esc", Desc: "back"},
		}
	case viewProfile:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "back"},
		}
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "space", Desc: "cycle gender"},
			{Key: "enter", Desc: "submit"},
			{Key: "esc", Desc: "cancel"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewConfirmDelete:
		return []zstyle.HelpPair{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewLogin:
		m.login, cmd = m.login.Update(msg)
	case viewRegister:
		m.register, cmd = m.register.Update(msg)
	case viewForgot:
		m.forgot, cmd = m.forgot.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewProfile:
		m.profile, cmd = m.profile.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewConfirmDelete:
		m.confirm, cmd = m.confirm.Update(msg)
	}

	return m, cmd
}

// navigate switches views, routing unauthenticated visitors to the login
// entry point and authenticated ones away from it.
func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	authed := m.auth.IsAuthenticated()

	switch view {
	case viewLogin, viewRegister, viewForgot:
		if authed {
			view = viewMenu
		}
	default:
		if !authed {
			view = viewLogin
		}
	}

	switch view {
	case viewLogin:
		m.login = newLoginModel()
		m.active = viewLogin
		return m, tea.Batch(m.login.Init(), tea.ClearScreen)

	case viewRegister:
		m.register = newRegisterModel()
		m.active = viewRegister
		return m, tea.Batch(m.register.Init(), tea.ClearScreen)

	case viewForgot:
		m.forgot = newForgotModel()
		m.active = viewForgot
		return m, tea.Batch(m.forgot.Init(), tea.ClearScreen)

	case viewMenu:
		mm := newMenuModel(m.version, currentOrZero(m.auth))
		mm.submissionCount = len(m.forms.VisibleTo(currentOrZero(m.auth)))
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewProfile:
		m.profile = newProfileModel(currentOrZero(m.auth))
		m.active = viewProfile
		return m, tea.Batch(m.profile.Init(), tea.ClearScreen)

	case viewForm:
		m.form = newFormModel(nil)
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case viewList:
		mm, cmd := m.loadList()
		return mm, tea.Batch(cmd, tea.ClearScreen)

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadList() (tea.Model, tea.Cmd) {
	m.forms.LoadAll()
	u := currentOrZero(m.auth)
	m.list = newListModel(m.forms.VisibleTo(u), u.IsAdmin())
	m.active = viewList
	return m, nil
}

func (m Model) isAdmin() bool {
	return currentOrZero(m.auth).IsAdmin()
}

func (m Model) handleLogin(msg loginSubmitMsg) (tea.Model, tea.Cmd) {
	if _, err := m.auth.Login(msg.email, msg.password); err != nil {
		m.login = m.login.withError(err)
		return m, nil
	}

	m.forms.LoadAll()
	return m.navigate(viewMenu)
}

func (m Model) handleRegister(msg registerSubmitMsg) (tea.Model, tea.Cmd) {
	if err := m.auth.Register(msg.input); err != nil {
		m.register = m.register.withError(err)
		return m, nil
	}

	// registration never logs in — back to the login entry point
	m.login = newLoginModel()
	m.login.flash = "account created, please log in"
	m.active = viewLogin
	return m, tea.Batch(m.login.Init(), tea.ClearScreen)
}

func (m Model) handleForgot(msg forgotSubmitMsg) (tea.Model, tea.Cmd) {
	err := m.auth.ResetPassword(msg.email, msg.oldPassword, msg.newPassword)
	if err != nil {
		m.forgot = m.forgot.withError(err)
		return m, nil
	}

	// a successful reset always ends the session
	m.login = newLoginModel()
	m.login.flash = "password updated, please log in again"
	m.active = viewLogin
	return m, tea.Batch(m.login.Init(), tea.ClearScreen)
}

func (m Model) handleProfile(msg profileSubmitMsg) (tea.Model, tea.Cmd) {
	u, err := m.auth.UpdateProfile(msg.patch)
	if err != nil {
		m.profile = m.profile.withError(err)
		return m, nil
	}

	m.profile = newProfileModel(u)
	m.profile.flash = "profile saved"
	return m, tea.Batch(m.profile.Init(), clearFlashAfter())
}

func (m Model) handleFormSubmit(msg formSubmitMsg) (tea.Model, tea.Cmd) {
	if msg.editID != "" {
		if _, err := m.forms.Update(msg.editID, msg.input.Patch()); err != nil {
			m.form = m.form.withError(err)
			return m, nil
		}
		mm, cmd := m.loadList()
		return mm, tea.Batch(cmd, tea.ClearScreen)
	}

	if _, err := m.forms.Add(msg.input); err != nil {
		m.form = m.form.withError(err)
		return m, nil
	}

	// fresh form after a successful submit, like the original's reset
	m.form = newFormModel(nil)
	m.form.flash = "your form has been successfully submitted"
	return m, tea.Batch(m.form.Init(), clearFlashAfter())
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	err := m.forms.Delete(id)
	mm, cmd := m.loadList()
	root := mm.(Model)
	if err != nil {
		root.list.flash = "delete: " + err.Error()
		return root, tea.Batch(cmd, tea.ClearScreen, clearFlashAfter())
	}
	root.list.flash = "deleted"
	return root, tea.Batch(cmd, tea.ClearScreen, clearFlashAfter())
}

// messages

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// loginSubmitMsg carries a sign-in attempt.
type loginSubmitMsg struct {
	email    string
	password string
}

// registerSubmitMsg carries a registration candidate.
type registerSubmitMsg struct {
	input auth.RegisterInput
}

// forgotSubmitMsg carries a password reset request.
type forgotSubmitMsg struct {
	email       string
	oldPassword string
	newPassword string
}

// profileSubmitMsg carries a profile edit.
type profileSubmitMsg struct {
	patch user.ProfilePatch
}

// formSubmitMsg carries a submission form submit. editID is empty for a
// new submission.
type formSubmitMsg struct {
	editID string
	input  forms.Input
}

// viewSubmissionMsg requests the detail view for a record.
type viewSubmissionMsg struct {
	record submission.Submission
}

// editSubmissionMsg requests the form in edit mode for a record.
type editSubmissionMsg struct {
	record submission.Submission
}

// deleteRequestMsg requests the delete confirmation for a record.
type deleteRequestMsg struct {
	record submission.Submission
}

// deleteConfirmedMsg confirms deletion of a record.
type deleteConfirmedMsg struct {
	id string
}

// logoutMsg tears down the session.
type logoutMsg struct{}

// flashMsg clears a transient status line.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}
