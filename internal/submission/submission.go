// Package submission defines the form submission record.
package submission

import "time"

// Gender is the set of accepted gender answers.
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderDecline Gender = "Decline to Answer"
)

// Genders lists every accepted answer in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderDecline}

// Submission is one submitted form record. SubmittedBy is the email of the
// account that created it and never changes after creation.
type Submission struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	MiddleInitial string    `json:"middle_initial,omitempty"`
	LastName      string    `json:"last_name"`
	BirthDate     string    `json:"birth_date"`
	Gender        Gender    `json:"gender"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Patch carries the editable fields of a submission. ID, SubmittedBy and
// SubmittedAt are owned by the store and cannot be patched.
type Patch struct {
	FirstName     string `json:"first_name"`
	MiddleInitial string `json:"middle_initial"`
	LastName      string `json:"last_name"`
	BirthDate     string `json:"birth_date"`
	Gender        Gender `json:"gender"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// Apply overwrites the editable fields of s with the patch values,
// preserving identity and provenance.
func (p Patch) Apply(s Submission) Submission {
	s.FirstName = p.FirstName
	s.MiddleInitial = p.MiddleInitial
	s.LastName = p.LastName
	s.BirthDate = p.BirthDate
	s.Gender = p.Gender
	s.Phone = p.Phone
	s.Email = p.Email
	s.Address = p.Address
	return s
}
