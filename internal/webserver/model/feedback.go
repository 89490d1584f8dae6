package model

import (
	"time"
)

// Feedback holds a single submitter's entry. Each email owns at most one
// row, which may be overwritten exactly once after its creation.
type Feedback struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Uuid            string    `gorm:"uniqueIndex; not null" json:"id"`
	FirstName       string    `gorm:"size:50" json:"first_name"`
	LastName        string    `gorm:"size:50" json:"last_name"`
	Email           string    `gorm:"uniqueIndex; size:120; not null" json:"email"`
	Mobile          string    `gorm:"size:15" json:"mobile"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	VerificationRef string    `json:"-"`
	SubmissionCount int       `gorm:"default:1" json:"submission_count"`
}

// Editable reports whether the entry may still take its one allowed edit
func (f Feedback) Editable() bool {
	return f.SubmissionCount < 2
}
