package models

import "time"

// UserWithSubmission is one row of the admin listing: a user left-joined to
// its form submission. Submission fields are nil for users without one.
type UserWithSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	FormType       *string    `json:"form_type"`
	Message        *string    `json:"message"`
	SubmissionTime *time.Time `json:"submission_time"`
}
