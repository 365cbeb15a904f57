package models

import "time"

// PartnershipType classifies how a business wants to collaborate
type PartnershipType string

const (
	PartnerFood      PartnershipType = "food"
	PartnerLogistics PartnershipType = "logistics"
	PartnerNGO       PartnershipType = "ngo"
	PartnerSponsor   PartnershipType = "sponsor"
)

// ValidPartnershipType reports whether t is a member of the type set
func ValidPartnershipType(t PartnershipType) bool {
	switch t {
	case PartnerFood, PartnerLogistics, PartnerNGO, PartnerSponsor:
		return true
	}
	return false
}

// PartnershipStatus tracks an application through review and activity
type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "pending"
	PartnershipApproved PartnershipStatus = "approved"
	PartnershipRejected PartnershipStatus = "rejected"
	PartnershipActive   PartnershipStatus = "active"
	PartnershipInactive PartnershipStatus = "inactive"
)

// ValidPartnershipStatus reports whether s is a member of the status set
func ValidPartnershipStatus(s PartnershipStatus) bool {
	switch s {
	case PartnershipPending, PartnershipApproved, PartnershipRejected,
		PartnershipActive, PartnershipInactive:
		return true
	}
	return false
}

type Partnership struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	BusinessName string            `json:"business_name" gorm:"not null"`
	ContactName  string            `json:"contact_name"`
	Email        string            `json:"email" gorm:"not null"`
	Phone        string            `json:"phone"`
	Type         PartnershipType   `json:"type" gorm:"not null"`
	Message      string            `json:"message"`
	Notes        string            `json:"notes"` // internal, set by admin during review
	Status       PartnershipStatus `json:"status" gorm:"not null;default:'pending'"`
	ApproverID   *uint             `json:"approver_id"`
	Approver     *User             `json:"approver,omitempty" gorm:"foreignKey:ApproverID"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
