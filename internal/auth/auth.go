// Package auth holds the session state and every operation that mutates
// accounts. The service owns the session as an explicit struct: the
// current user is tracked by email only and resolved on demand against
// the persisted users collection, so profile and password updates cannot
// diverge between session and collection.
package auth

import (
	"errors"

	"github.com/zarlcorp/zforms/internal/kvstore"
	"github.com/zarlcorp/zforms/internal/user"
	"github.com/zarlcorp/zforms/internal/validate"
)

const (
	usersKey   = "users"
	sessionKey = "user"
)

// ErrDuplicateUser is returned when registering an email that is taken.
var ErrDuplicateUser = errors.New("user with this email already exists")

// ErrInvalidCredentials is returned when no account matches the given
// email and password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not authenticated")

// RegisterInput is a registration candidate before validation.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	Location        string
	AcceptTerms     bool
}

func (in RegisterInput) values() validate.Values {
	terms := "false"
	if in.AcceptTerms {
		terms = "true"
	}
	return validate.Values{
		"username":         in.Username,
		"email":            in.Email,
		"password":         in.Password,
		"confirm_password": in.ConfirmPassword,
		"phone_number":     in.PhoneNumber,
		"location":         in.Location,
		"terms":            terms,
	}
}

// Service is the auth state module. All mutations go through it; views
// never touch the persisted keys directly.
type Service struct {
	kv           *kvstore.Store
	currentEmail string
}

// New builds the service and restores any previously persisted session.
// A snapshot whose email no longer resolves against the users collection
// is discarded.
func New(kv *kvstore.Store) *Service {
	s := &Service{kv: kv}

	snapshot := kvstore.Load[*user.User](kv, sessionKey)
	if snapshot == nil {
		return s
	}
	if _, ok := s.findUser(snapshot.Email); ok {
		s.currentEmail = snapshot.Email
	}
	return s
}

// Register validates the candidate and appends it to the users
// collection. It does not log the new user in.
func (s *Service) Register(in RegisterInput) error {
	if errs := validate.Register.Validate(in.values()); errs != nil {
		return errs
	}

	users := s.users()
	for _, u := range users {
		if u.Email == in.Email {
			return ErrDuplicateUser
		}
	}

	users = append(users, user.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
		Location:    in.Location,
	})
	return kvstore.Save(s.kv, usersKey, users)
}

// Login looks up an account by email and password. On a match it starts
// the session and persists the snapshot; on no match the session is left
// untouched.
func (s *Service) Login(email, password string) (user.User, error) {
	if errs := validate.Login.Validate(validate.Values{
		"email":    email,
		"password": password,
	}); errs != nil {
		return user.User{}, errs
	}

	for _, u := range s.users() {
		if u.Email == email && u.Password == password {
			s.currentEmail = u.Email
			if err := kvstore.Save(s.kv, sessionKey, u); err != nil {
				return user.User{}, err
			}
			return u, nil
		}
	}

	return user.User{}, ErrInvalidCredentials
}

// Logout tears down the session. It always succeeds; a failure to remove
// the persisted snapshot still leaves the in-memory session cleared.
func (s *Service) Logout() {
	s.currentEmail = ""
	_ = s.kv.Remove(sessionKey)
}

// ResetPassword updates the password of the account matching
// (email, oldPassword). On success the session always ends, even when
// the caller was logged in as that account; resetting requires a fresh
// login.
func (s *Service) ResetPassword(email, oldPassword, newPassword string) error {
	if errs := validate.ResetPassword.Validate(validate.Values{
		"email":        email,
		"old_password": oldPassword,
		"new_password": newPassword,
	}); errs != nil {
		return errs
	}

	users := s.users()
	found := false
	for i, u := range users {
		if u.Email == email && u.Password == oldPassword {
			users[i].Password = newPassword
			found = true
			break
		}
	}
	if !found {
		return ErrInvalidCredentials
	}

	if err := kvstore.Save(s.kv, usersKey, users); err != nil {
		return err
	}

	// a reset always requires re-authentication
	s.currentEmail = ""
	_ = s.kv.Remove(sessionKey)
	return nil
}

// UpdateProfile merges the patch into the current user's stored record
// and refreshes the session snapshot. Changing the email re-keys the
// session; a change onto an email that is already taken is rejected.
func (s *Service) UpdateProfile(patch user.ProfilePatch) (user.User, error) {
	current, ok := s.CurrentUser()
	if !ok {
		return user.User{}, ErrNotAuthenticated
	}

	// validate the merged record, not the raw patch: empty patch fields
	// mean "keep current" and must not trip the required rules
	updated := patch.Apply(current)
	if errs := validate.Profile.Validate(validate.Values{
		"username":     updated.Username,
		"email":        updated.Email,
		"phone_number": updated.PhoneNumber,
	}); errs != nil {
		return user.User{}, errs
	}

	users := s.users()
	if updated.Email != current.Email {
		for _, u := range users {
			if u.Email == updated.Email {
				return user.User{}, ErrDuplicateUser
			}
		}
	}

	for i, u := range users {
		if u.Email == current.Email {
			users[i] = updated
			break
		}
	}

	if err := kvstore.Save(s.kv, usersKey, users); err != nil {
		return user.User{}, err
	}

	s.currentEmail = updated.Email
	if err := kvstore.Save(s.kv, sessionKey, updated); err != nil {
		return user.User{}, err
	}

	return updated, nil
}

// CurrentUser resolves the session against the users collection.
func (s *Service) CurrentUser() (user.User, bool) {
	if s.currentEmail == "" {
		return user.User{}, false
	}
	return s.findUser(s.currentEmail)
}

// IsAuthenticated reports whether a current user resolves. The routing
// layer uses this as its only read signal.
func (s *Service) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

func (s *Service) users() []user.User {
	return kvstore.Load[[]user.User](s.kv, usersKey)
}

func (s *Service) findUser(email string) (user.User, bool) {
	for _, u := range s.users() {
		if u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}
