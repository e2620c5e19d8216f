// Package user defines the account record and its profile patch.
package user

import "strings"

// AdminUsername is the reserved identity that can see every submission.
const AdminUsername = "admin"

// User represents a registered account. Email is the identity key;
// the password is stored as entered — there is no hashing layer.
type User struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
}

// IsAdmin reports whether the user holds the reserved admin identity.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Username, AdminUsername)
}

// ProfilePatch carries the editable profile fields. Empty fields are
// left unchanged; the password is never part of a profile edit.
type ProfilePatch struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Location    string `json:"location"`
}

// Apply merges the patch into u, skipping empty fields.
func (p ProfilePatch) Apply(u User) User {
	if p.Username != "" {
		u.Username = p.Username
	}
	if p.Email != "" {
		u.Email = p.Email
	}
	if p.PhoneNumber != "" {
		u.PhoneNumber = p.PhoneNumber
	}
	if p.Location != "" {
		u.Location = p.Location
	}
	return u
}
