package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus is the lifecycle stage of a job application.
// The integer codes are part of the wire contract, do not renumber.
type ApplicationStatus int

const (
	StatusApplied     ApplicationStatus = 1
	StatusUnderReview ApplicationStatus = 2
	StatusInterview   ApplicationStatus = 3
	StatusOffer       ApplicationStatus = 4
	StatusRejected    ApplicationStatus = 5
	StatusWithdrawn   ApplicationStatus = 6
)

var statusLabels = map[ApplicationStatus]string{
	StatusApplied:     "Applied",
	StatusUnderReview: "Under Review",
	StatusInterview:   "Interview",
	StatusOffer:       "Offer",
	StatusRejected:    "Rejected",
	StatusWithdrawn:   "Withdrawn",
}

// Label returns the display name for a status. Anything outside the
// six known codes comes back as "Unknown" instead of blowing up.
func (s ApplicationStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func (s ApplicationStatus) IsValid() bool {
	return s >= StatusApplied && s <= StatusWithdrawn
}

// StatusOption pairs a status code with its label for selection controls.
type StatusOption struct {
	Value ApplicationStatus
	Label string
}

// StatusOptions returns all six statuses in fixed Applied -> Withdrawn order.
func StatusOptions() []StatusOption {
	return []StatusOption{
		{StatusApplied, StatusApplied.Label()},
		{StatusUnderReview, StatusUnderReview.Label()},
		{StatusInterview, StatusInterview.Label()},
		{StatusOffer, StatusOffer.Label()},
		{StatusRejected, StatusRejected.Label()},
		{StatusWithdrawn, StatusWithdrawn.Label()},
	}
}

type JobApplication struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Company  string            `gorm:"not null" json:"company"`
	Position string            `gorm:"not null" json:"position"`
	Status   ApplicationStatus `gorm:"default:1" json:"status"`

	// DateApplied is the calendar date the user applied on, distinct
	// from the CreatedAt/UpdatedAt audit timestamps.
	DateApplied time.Time `gorm:"not null" json:"dateApplied"`
}
