package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

// ParseApplicationStatus rejects values outside the closed status set.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationReviewing, ApplicationShortlisted,
		ApplicationRejected, ApplicationAccepted:
		return ApplicationStatus(s), true
	}
	return "", false
}

type ApplicationNote struct {
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Application struct {
	ID          string
	JobID       string
	ApplicantID string
	ResumeKey   string
	CoverLetter string
	Status      ApplicationStatus
	Notes       []ApplicationNote
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
