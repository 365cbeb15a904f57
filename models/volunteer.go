package models

import "time"

// VolunteerStatus tracks review of a volunteer application
type VolunteerStatus string

const (
	VolunteerSubmitted VolunteerStatus = "submitted"
	VolunteerVerified  VolunteerStatus = "verified"
	VolunteerRejected  VolunteerStatus = "rejected"
)

// ValidVolunteerStatus reports whether s is a member of the volunteer status set
func ValidVolunteerStatus(s VolunteerStatus) bool {
	switch s {
	case VolunteerSubmitted, VolunteerVerified, VolunteerRejected:
		return true
	}
	return false
}

type VolunteerApplication struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       *uint           `json:"user_id"` // nil when applying without an account
	Name         string          `json:"name" gorm:"not null"`
	Email        string          `json:"email" gorm:"not null"`
	Phone        string          `json:"phone"`
	Availability string          `json:"availability"`
	Motivation   string          `json:"motivation"`
	ProofFile    string          `json:"proof_file"`
	Status       VolunteerStatus `json:"status" gorm:"not null;default:'submitted'"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
