package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zforms/internal/submission"
	"github.com/zarlcorp/zforms/internal/user"
	"github.com/zarlcorp/zforms/internal/validate"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func testSubmission() submission.Submission {
	return submission.Submission{
		ID:          "sub-001",
		FirstName:   "Jane",
		LastName:    "Doe",
		BirthDate:   "1990-06-15",
		Gender:      submission.GenderFemale,
		Phone:       "5550100200",
		Email:       "jane@example.com",
		Address:     "12 Main St",
		SubmittedBy: "jane@example.com",
		SubmittedAt: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
	}
}

// login view tests

func TestLoginViewShowsWelcome(t *testing.T) {
	m := newLoginModel()
	view := m.View()

	if !strings.Contains(view, "Welcome back") {
		t.Error("view should show the welcome title")
	}
	if !strings.Contains(view, "email") || !strings.Contains(view, "password") {
		t.Error("view should show both field labels")
	}
	if !strings.Contains(view, "zforms") {
		t.Error("view should show the tool name")
	}
}

func TestLoginSubmitEmitsMsg(t *testing.T) {
	m := newLoginModel()
	m.inputs[loginFieldEmail].SetValue("jane@example.com")
	m.inputs[loginFieldPassword].SetValue("hunter22")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(loginSubmitMsg)
	if !ok {
		t.Fatal("should emit loginSubmitMsg")
	}
	if msg.email != "jane@example.com" || msg.password != "hunter22" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestLoginNavigatesToRegister(t *testing.T) {
	m := newLoginModel()
	_, cmd := m.Update(specialKey(tea.KeyCtrlR))
	if cmd == nil {
		t.Fatal("ctrl+r should emit a command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.view != viewRegister {
		t.Errorf("got %+v, want navigate to register", nav)
	}
}

func TestLoginNavigatesToForgot(t *testing.T) {
	m := newLoginModel()
	_, cmd := m.Update(specialKey(tea.KeyCtrlP))
	if cmd == nil {
		t.Fatal("ctrl+p should emit a command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.view != viewForgot {
		t.Errorf("got %+v, want navigate to forgot", nav)
	}
}

func TestLoginWithErrorRendersFieldErrors(t *testing.T) {
	m := newLoginModel()
	m = m.withError(validate.Errors{"email": "email is required"})

	if !strings.Contains(m.View(), "email is required") {
		t.Error("field error should render inline")
	}
}

func TestLoginWithErrorRendersServiceError(t *testing.T) {
	m := newLoginModel()
	m = m.withError(errors.New("invalid email or password"))

	if !strings.Contains(m.View(), "invalid email or password") {
		t.Error("service error should render")
	}
}

func TestLoginFlashCleared(t *testing.T) {
	m := newLoginModel()
	m.flash = "logged out"
	m, _ = m.Update(flashMsg{})
	if m.flash != "" {
		t.Error("flash should clear")
	}
}

// register view tests

func TestRegisterViewShowsFields(t *testing.T) {
	m := newRegisterModel()
	view := m.View()

	for _, label := range regFieldLabels {
		if !strings.Contains(view, label) {
			t.Errorf("view should show %q", label)
		}
	}
	if !strings.Contains(view, "I accept the terms") {
		t.Error("view should show the terms checkbox")
	}
	if !strings.Contains(view, "[ ]") {
		t.Error("terms should start unchecked")
	}
}

func TestRegisterTermsToggle(t *testing.T) {
	m := newRegisterModel()
	m.focus = regFieldTerms

	m, _ = m.Update(keyMsg(' '))
	if !m.acceptTerms {
		t.Fatal("space should check the terms box")
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Error("view should show the checked box")
	}

	m, _ = m.Update(keyMsg(' '))
	if m.acceptTerms {
		t.Error("space should toggle the box off again")
	}
}

func TestRegisterFocusWrapsOverTerms(t *testing.T) {
	m := newRegisterModel()

	// tab through every input and the terms slot, back to the first
	for range regFieldCount + 1 {
		m, _ = m.Update(specialKey(tea.KeyTab))
	}
	if m.focus != 0 {
		t.Errorf("focus = %d, want wrap to 0", m.focus)
	}
}

func TestRegisterSuggestPassword(t *testing.T) {
	m := newRegisterModel()
	m, _ = m.Update(specialKey(tea.KeyCtrlG))

	pw := m.inputs[regFieldPassword].Value()
	if pw == "" {
		t.Fatal("ctrl+g should fill the password")
	}
	if m.inputs[regFieldConfirm].Value() != pw {
		t.Error("confirm should match the generated password")
	}
}

func TestRegisterSubmitBuildsInput(t *testing.T) {
	m := newRegisterModel()
	m.inputs[regFieldUsername].SetValue("jane")
	m.inputs[regFieldEmail].SetValue("jane@example.com")
	m.inputs[regFieldPassword].SetValue("hunter22")
	m.inputs[regFieldConfirm].SetValue("hunter22")
	m.inputs[regFieldPhone].SetValue("5550100200")
	m.inputs[regFieldLocation].SetValue("Portland")
	m.acceptTerms = true

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(registerSubmitMsg)
	if !ok {
		t.Fatal("should emit registerSubmitMsg")
	}
	if msg.input.Username != "jane" || !msg.input.AcceptTerms {
		t.Errorf("input = %+v", msg.input)
	}
}

func TestRegisterEscGoesToLogin(t *testing.T) {
	m := newRegisterModel()
	_, cmd := m.Update(escKey())
	if cmd == nil {
		t.Fatal("esc should emit a command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.view != viewLogin {
		t.Errorf("got %+v, want navigate to login", nav)
	}
}

// forgot view tests

func TestForgotSubmitEmitsMsg(t *testing.T) {
	m := newForgotModel()
	m.inputs[forgotFieldEmail].SetValue("jane@example.com")
	m.inputs[forgotFieldOld].SetValue("hunter22")
	m.inputs[forgotFieldNew].SetValue("newpass99")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(forgotSubmitMsg)
	if !ok {
		t.Fatal("should emit forgotSubmitMsg")
	}
	if msg.oldPassword != "hunter22" || msg.newPassword != "newpass99" {
		t.Errorf("msg = %+v", msg)
	}
}

func TestForgotViewWarnsAboutRelogin(t *testing.T) {
	m := newForgotModel()
	if !strings.Contains(m.View(), "log in again") {
		t.Error("view should warn that the session ends")
	}
}

// menu tests

func TestMenuViewShowsUser(t *testing.T) {
	m := newMenuModel("1.0", user.User{Username: "jane"})
	m.submissionCount = 3
	view := m.View()

	if !strings.Contains(view, "jane") {
		t.Error("view should show the username")
	}
	if !strings.Contains(view, "3 submissions") {
		t.Error("view should show the submission count")
	}
	if strings.Contains(view, "(admin)") {
		t.Error("ordinary user should not be marked admin")
	}
}

func TestMenuViewMarksAdmin(t *testing.T) {
	m := newMenuModel("1.0", user.User{Username: "admin"})
	if !strings.Contains(m.View(), "(admin)") {
		t.Error("admin should be marked")
	}
}

func TestMenuSelectNavigates(t *testing.T) {
	tests := []struct {
		cursor int
		want   viewID
	}{
		{cursor: 0, want: viewForm},
		{cursor: 1, want: viewList},
		{cursor: 2, want: viewProfile},
	}

	for _, tt := range tests {
		m := newMenuModel("1.0", user.User{Username: "jane"})
		m.cursor = tt.cursor

		_, cmd := m.Update(enterKey())
		if cmd == nil {
			t.Fatalf("cursor %d: no command", tt.cursor)
		}
		nav, ok := cmd().(navigateMsg)
		if !ok || nav.view != tt.want {
			t.Errorf("cursor %d: got %+v, want view %d", tt.cursor, nav, tt.want)
		}
	}
}

func TestMenuSelectLogout(t *testing.T) {
	m := newMenuModel("1.0", user.User{Username: "jane"})
	m.cursor = int(menuLogout)

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(logoutMsg); !ok {
		t.Error("should emit logoutMsg")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := newMenuModel("1.0", user.User{Username: "jane"})

	m, _ = m.Update(keyMsg('k'))
	if m.cursor != 0 {
		t.Error("cursor should not go above the first item")
	}

	for range len(menuItems) + 2 {
		m, _ = m.Update(keyMsg('j'))
	}
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor = %d, want last item", m.cursor)
	}
}

// profile tests

func TestProfilePrefillsCurrentUser(t *testing.T) {
	m := newProfileModel(user.User{
		Username:    "jane",
		Email:       "jane@example.com",
		PhoneNumber: "5550100200",
		Location:    "Portland",
	})

	if m.inputs[profileFieldUsername].Value() != "jane" {
		t.Error("username not prefilled")
	}
	if m.inputs[profileFieldEmail].Value() != "jane@example.com" {
		t.Error("email not prefilled")
	}
}

func TestProfileSubmitEmitsPatch(t *testing.T) {
	m := newProfileModel(user.User{Username: "jane", Email: "jane@example.com"})
	m.inputs[profileFieldLocation].SetValue("Seattle")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(profileSubmitMsg)
	if !ok {
		t.Fatal("should emit profileSubmitMsg")
	}
	if msg.patch.Location != "Seattle" || msg.patch.Username != "jane" {
		t.Errorf("patch = %+v", msg.patch)
	}
}

// form tests

func TestFormGenderCycle(t *testing.T) {
	m := newFormModel(nil)
	m.focus = formFieldGender

	if !strings.Contains(m.View(), "(space to choose)") {
		t.Error("unanswered gender should show the hint")
	}

	m, _ = m.Update(keyMsg(' '))
	if m.gender != 0 {
		t.Fatalf("gender = %d, want 0 after first space", m.gender)
	}

	for range len(submission.Genders) {
		m, _ = m.Update(keyMsg(' '))
	}
	if m.gender != 0 {
		t.Errorf("gender = %d, want wrap back to 0", m.gender)
	}
}

func TestFormEditPrefills(t *testing.T) {
	rec := testSubmission()
	m := newFormModel(&rec)

	if !m.editing || m.editID != rec.ID {
		t.Fatalf("edit mode not set: editing=%v id=%q", m.editing, m.editID)
	}
	if m.inputs[formFieldFirst].Value() != "Jane" {
		t.Error("first name not prefilled")
	}
	if m.gender < 0 || submission.Genders[m.gender] != rec.Gender {
		t.Errorf("gender = %d, want index of %q", m.gender, rec.Gender)
	}
	if !strings.Contains(m.View(), "edit submission") {
		t.Error("view should show the edit title")
	}
}

func TestFormSubmitCarriesEditID(t *testing.T) {
	rec := testSubmission()
	m := newFormModel(&rec)

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}

	msg, ok := cmd().(formSubmitMsg)
	if !ok {
		t.Fatal("should emit formSubmitMsg")
	}
	if msg.editID != rec.ID {
		t.Errorf("editID = %q, want %q", msg.editID, rec.ID)
	}
	if msg.input.FirstName != "Jane" {
		t.Errorf("input = %+v", msg.input)
	}
}

func TestFormEscTargetDependsOnMode(t *testing.T) {
	m := newFormModel(nil)
	_, cmd := m.Update(escKey())
	if nav := cmd().(navigateMsg); nav.view != viewMenu {
		t.Errorf("new form esc: got view %d, want menu", nav.view)
	}

	rec := testSubmission()
	m = newFormModel(&rec)
	_, cmd = m.Update(escKey())
	if nav := cmd().(navigateMsg); nav.view != viewList {
		t.Errorf("edit form esc: got view %d, want list", nav.view)
	}
}

func TestFormWithErrorRendersInline(t *testing.T) {
	m := newFormModel(nil)
	m = m.withError(validate.Errors{"phone": "phone must be 10 digits"})

	if !strings.Contains(m.View(), "phone must be 10 digits") {
		t.Error("field error should render inline")
	}
}

// list tests

func TestListEmptyState(t *testing.T) {
	m := newListModel(nil, false)
	if !strings.Contains(m.View(), "no submissions yet") {
		t.Error("empty list should show the empty state")
	}
}

func TestListShowsCountAndRows(t *testing.T) {
	m := newListModel([]submission.Submission{testSubmission()}, false)
	view := m.View()

	if !strings.Contains(view, "(1) submissions") {
		t.Error("view should show the count")
	}
	if !strings.Contains(view, "Jane Doe") {
		t.Error("view should show the submitter name")
	}
	if strings.Contains(view, "by jane@example.com") {
		t.Error("non-admin rows should not show provenance")
	}
}

func TestListAdminShowsProvenance(t *testing.T) {
	m := newListModel([]submission.Submission{testSubmission()}, true)
	if !strings.Contains(m.View(), "by jane@example.com") {
		t.Error("admin rows should show who submitted")
	}
}

func TestListKeysDispatchIntents(t *testing.T) {
	rec := testSubmission()
	m := newListModel([]submission.Submission{rec}, false)

	_, cmd := m.Update(enterKey())
	if msg := cmd().(viewSubmissionMsg); msg.record.ID != rec.ID {
		t.Error("enter should request the detail view")
	}

	_, cmd = m.Update(keyMsg('e'))
	if msg := cmd().(editSubmissionMsg); msg.record.ID != rec.ID {
		t.Error("e should request the edit form")
	}

	_, cmd = m.Update(keyMsg('d'))
	if msg := cmd().(deleteRequestMsg); msg.record.ID != rec.ID {
		t.Error("d should request delete confirmation")
	}
}

func TestListKeysIgnoredWhenEmpty(t *testing.T) {
	m := newListModel(nil, false)
	_, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

// detail tests

func TestDetailShowsAllFields(t *testing.T) {
	m := newDetailModel(testSubmission(), false)
	view := m.View()

	for _, want := range []string{"Jane", "Doe", "1990-06-15", "Female", "5550100200", "12 Main St"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should show %q", want)
		}
	}
}

func TestDetailAdminShowsProvenanceRow(t *testing.T) {
	admin := newDetailModel(testSubmission(), true)
	plain := newDetailModel(testSubmission(), false)

	if len(admin.fields) != len(plain.fields)+1 {
		t.Errorf("admin should get one extra field: %d vs %d", len(admin.fields), len(plain.fields))
	}
}

func TestDetailDispatchesEditAndDelete(t *testing.T) {
	rec := testSubmission()
	m := newDetailModel(rec, false)

	_, cmd := m.Update(keyMsg('e'))
	if msg := cmd().(editSubmissionMsg); msg.record.ID != rec.ID {
		t.Error("e should request the edit form")
	}

	_, cmd = m.Update(keyMsg('d'))
	if msg := cmd().(deleteRequestMsg); msg.record.ID != rec.ID {
		t.Error("d should request delete confirmation")
	}
}

// confirm tests

func TestConfirmYes(t *testing.T) {
	rec := testSubmission()
	m := newConfirmModel(rec)

	_, cmd := m.Update(keyMsg('y'))
	if cmd == nil {
		t.Fatal("y should emit a command")
	}
	if msg := cmd().(deleteConfirmedMsg); msg.id != rec.ID {
		t.Errorf("id = %q, want %q", msg.id, rec.ID)
	}
}

func TestConfirmNo(t *testing.T) {
	m := newConfirmModel(testSubmission())

	for _, k := range []tea.KeyMsg{keyMsg('n'), escKey()} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%q should emit a command", k.String())
		}
		if nav := cmd().(navigateMsg); nav.view != viewList {
			t.Errorf("%q: got view %d, want list", k.String(), nav.view)
		}
	}
}

func TestConfirmViewWarns(t *testing.T) {
	m := newConfirmModel(testSubmission())
	view := m.View()

	if !strings.Contains(view, "delete this submission?") {
		t.Error("view should ask for confirmation")
	}
	if !strings.Contains(view, "this action cannot be undone") {
		t.Error("view should warn the delete is permanent")
	}
	if !strings.Contains(view, "Jane Doe") {
		t.Error("view should identify the record")
	}
}
