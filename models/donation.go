package models

import "time"

// DonationPaymentStatus tracks the money side of a donation
type DonationPaymentStatus string

const (
	DonationPaymentPending   DonationPaymentStatus = "pending"
	DonationPaymentCompleted DonationPaymentStatus = "completed"
	DonationPaymentFailed    DonationPaymentStatus = "failed"
	DonationPaymentRefunded  DonationPaymentStatus = "refunded"
)

// ValidDonationPaymentStatus reports whether s is a member of the payment status set
func ValidDonationPaymentStatus(s DonationPaymentStatus) bool {
	switch s {
	case DonationPaymentPending, DonationPaymentCompleted,
		DonationPaymentFailed, DonationPaymentRefunded:
		return true
	}
	return false
}

// DonationStatus tracks the donation record itself
type DonationStatus string

const (
	DonationActive    DonationStatus = "active"
	DonationCancelled DonationStatus = "cancelled"
	DonationRefunded  DonationStatus = "refunded"
)

// ValidDonationStatus reports whether s is a member of the donation status set
func ValidDonationStatus(s DonationStatus) bool {
	switch s {
	case DonationActive, DonationCancelled, DonationRefunded:
		return true
	}
	return false
}

// ValidDonationPaymentMethod reports whether m is an accepted payment method
func ValidDonationPaymentMethod(m string) bool {
	switch m {
	case "card", "upi", "netbanking", "cash":
		return true
	}
	return false
}

type Donation struct {
	ID              uint                  `json:"id" gorm:"primaryKey"`
	DonorID         *uint                 `json:"donor_id"` // nil for anonymous/guest donations
	Donor           *User                 `json:"donor,omitempty" gorm:"foreignKey:DonorID"`
	DonorName       string                `json:"donor_name" gorm:"not null"`
	DonorEmail      string                `json:"donor_email"`
	Amount          float64               `json:"amount" gorm:"not null"`
	Message         string                `json:"message"`
	Notes           string                `json:"notes"` // internal, set by admin
	PaymentMethod   string                `json:"payment_method" gorm:"not null"`
	PaymentStatus   DonationPaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	Status          DonationStatus        `json:"status" gorm:"not null;default:'active'"`
	PickupRequestID *uint                 `json:"pickup_request_id"` // optional link to the pickup it funds
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}
