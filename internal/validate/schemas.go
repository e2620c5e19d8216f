package validate

import "github.com/zarlcorp/zforms/internal/submission"

func genderOptions() []string {
	opts := make([]string, len(submission.Genders))
	for i, g := range submission.Genders {
		opts[i] = string(g)
	}
	return opts
}

// Register validates a new account. Field names match the User JSON keys.
var Register = Schema{
	"username": {
		Required("username is required"),
		MinLen(3, "username must be at least 3 characters"),
	},
	"email": {
		Required("email is required"),
		Email("invalid email address"),
	},
	"password": {
		Required("password is required"),
		MinLen(6, "password must be at least 6 characters"),
	},
	"confirm_password": {
		Required("please confirm your password"),
		EqualTo("password", "passwords do not match"),
	},
	"phone_number": {
		Required("phone number is required"),
		Digits("phone number must be digits only"),
		Len(10, "phone number must be 10 digits"),
	},
	"location": {
		Required("location is required"),
	},
	"terms": {
		True("you must accept the terms"),
	},
}

// Login validates a sign-in attempt.
var Login = Schema{
	"email": {
		Required("email is required"),
		Email("invalid email"),
	},
	"password": {
		Required("password is required"),
	},
}

// ResetPassword validates a password reset request.
var ResetPassword = Schema{
	"email": {
		Required("email is required"),
		Email("invalid email format"),
	},
	"old_password": {
		Required("old password is required"),
	},
	"new_password": {
		Required("new password is required"),
		MinLen(6, "password must be at least 6 characters"),
	},
}

// Profile validates a profile edit. Phone and location are optional but
// constrained when present.
var Profile = Schema{
	"username": {
		Required("username is required"),
	},
	"email": {
		Required("email is required"),
		Email("invalid email"),
	},
	"phone_number": {
		Digits("phone number must be numeric"),
		Len(10, "phone number must be 10 digits"),
	},
}

// Submission validates a form submission.
var Submission = Schema{
	"first_name": {
		Required("first name is required"),
	},
	"middle_initial": {
		MaxLen(1, "only one character allowed"),
	},
	"last_name": {
		Required("last name is required"),
	},
	"birth_date": {
		Required("birth date is required"),
		Date("birth date must be YYYY-MM-DD"),
	},
	"gender": {
		Required("gender is required"),
		OneOf(genderOptions(), "unknown gender"),
	},
	"phone": {
		Required("phone number is required"),
		Digits("phone number must be digits only"),
		Len(10, "phone must be 10 digits"),
	},
	"email": {
		Required("email is required"),
		Email("invalid email"),
	},
	"address": {
		Required("address is required"),
	},
}
