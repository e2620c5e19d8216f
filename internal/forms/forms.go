// Package forms holds the submitted-record collection and its CRUD
// operations. The in-memory collection keeps insertion order and is
// written back in full after every mutation.
package forms

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/zforms/internal/auth"
	"github.com/zarlcorp/zforms/internal/kvstore"
	"github.com/zarlcorp/zforms/internal/submission"
	"github.com/zarlcorp/zforms/internal/user"
	"github.com/zarlcorp/zforms/internal/validate"
)

const submissionsKey = "submissions"

// ErrNotFound is returned when no submission has the given id.
var ErrNotFound = errors.New("submission not found")

// Input is a submission candidate before validation and stamping.
type Input struct {
	FirstName     string
	MiddleInitial string
	LastName      string
	BirthDate     string
	Gender        submission.Gender
	Phone         string
	Email         string
	Address       string
}

func (in Input) values() validate.Values {
	return validate.Values{
		"first_name":     in.FirstName,
		"middle_initial": in.MiddleInitial,
		"last_name":      in.LastName,
		"birth_date":     in.BirthDate,
		"gender":         string(in.Gender),
		"phone":          in.Phone,
		"email":          in.Email,
		"address":        in.Address,
	}
}

// Patch converts the input to a submission patch for edits.
func (in Input) Patch() submission.Patch {
	return submission.Patch{
		FirstName:     in.FirstName,
		MiddleInitial: in.MiddleInitial,
		LastName:      in.LastName,
		BirthDate:     in.BirthDate,
		Gender:        in.Gender,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
	}
}

// Service is the submission state module.
type Service struct {
	kv    *kvstore.Store
	auth  *auth.Service
	items []submission.Submission
}

// New builds the service and loads the persisted collection.
func New(kv *kvstore.Store, auth *auth.Service) *Service {
	s := &Service{kv: kv, auth: auth}
	s.LoadAll()
	return s
}

// Add validates the input, stamps provenance from the current session
// and a fresh id, appends and persists. The in-memory collection only
// changes once the write succeeds, so a failed save never leaves memory
// ahead of disk.
func (s *Service) Add(in Input) (submission.Submission, error) {
	current, ok := s.auth.CurrentUser()
	if !ok {
		return submission.Submission{}, auth.ErrNotAuthenticated
	}

	if errs := validate.Submission.Validate(in.values()); errs != nil {
		return submission.Submission{}, errs
	}

	rec := in.Patch().Apply(submission.Submission{
		ID:          uuid.NewString(),
		SubmittedBy: current.Email,
		SubmittedAt: time.Now().UTC(),
	})

	next := append(s.All(), rec)
	if err := s.persist(next); err != nil {
		return submission.Submission{}, err
	}
	s.items = next
	return rec, nil
}

// LoadAll replaces the in-memory collection with the persisted snapshot.
func (s *Service) LoadAll() {
	s.items = kvstore.Load[[]submission.Submission](s.kv, submissionsKey)
}

// All returns the collection in insertion order.
func (s *Service) All() []submission.Submission {
	out := make([]submission.Submission, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the submission with the given id.
func (s *Service) Get(id string) (submission.Submission, bool) {
	for _, rec := range s.items {
		if rec.ID == id {
			return rec, true
		}
	}
	return submission.Submission{}, false
}

// Update validates the patch and merges it into the record with the
// given id. ID, SubmittedBy and SubmittedAt are always preserved.
func (s *Service) Update(id string, patch submission.Patch) (submission.Submission, error) {
	if errs := validate.Submission.Validate(validate.Values{
		"first_name":     patch.FirstName,
		"middle_initial": patch.MiddleInitial,
		"last_name":      patch.LastName,
		"birth_date":     patch.BirthDate,
		"gender":         string(patch.Gender),
		"phone":          patch.Phone,
		"email":          patch.Email,
		"address":        patch.Address,
	}); errs != nil {
		return submission.Submission{}, errs
	}

	for i, rec := range s.items {
		if rec.ID == id {
			next := s.All()
			next[i] = patch.Apply(rec)
			if err := s.persist(next); err != nil {
				return submission.Submission{}, err
			}
			s.items = next
			return next[i], nil
		}
	}

	return submission.Submission{}, ErrNotFound
}

// Delete removes the record with the given id and persists.
func (s *Service) Delete(id string) error {
	for i, rec := range s.items {
		if rec.ID == id {
			next := s.All()
			next = append(next[:i], next[i+1:]...)
			if err := s.persist(next); err != nil {
				return err
			}
			s.items = next
			return nil
		}
	}
	return ErrNotFound
}

// VisibleTo projects the collection for an identity: the admin username
// sees everything, everyone else only their own submissions.
func (s *Service) VisibleTo(identity user.User) []submission.Submission {
	if identity.IsAdmin() {
		return s.All()
	}

	var out []submission.Submission
	for _, rec := range s.items {
		if rec.SubmittedBy == identity.Email {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Service) persist(items []submission.Submission) error {
	return kvstore.Save(s.kv, submissionsKey, items)
}
