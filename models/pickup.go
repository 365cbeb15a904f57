package models

import "time"

// PickupStatus represents all possible states of a pickup request.
// Any member may be set regardless of the current value; the platform
// records status changes but does not guard transitions.
type PickupStatus string

const (
	PickupPending   PickupStatus = "pending"
	PickupAccepted  PickupStatus = "accepted"
	PickupRejected  PickupStatus = "rejected"
	PickupCompleted PickupStatus = "completed"
	PickupCancelled PickupStatus = "cancelled"
)

// ValidPickupStatus reports whether s is a member of the pickup status set
func ValidPickupStatus(s PickupStatus) bool {
	switch s {
	case PickupPending, PickupAccepted, PickupRejected, PickupCompleted, PickupCancelled:
		return true
	}
	return false
}

// PaymentStatus covers the optional contribution attached to a pickup
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentNA      PaymentStatus = "na"
)

// ValidPaymentStatus reports whether s is a member of the payment status set
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentNA:
		return true
	}
	return false
}

type PickupRequest struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RequesterID   uint          `json:"requester_id" gorm:"not null"`
	Requester     User          `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
	RequesterName string        `json:"requester_name"`
	ContactPhone  string        `json:"contact_phone"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
	Items         []PickupItem  `json:"items,omitempty" gorm:"foreignKey:PickupRequestID"`
	TotalAmount   float64       `json:"total_amount"`
	Status        PickupStatus  `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod string        `json:"payment_method" gorm:"default:'none'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"default:'na'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type PickupItem struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	PickupRequestID uint    `json:"pickup_request_id" gorm:"not null"`
	RestaurantID    uint    `json:"restaurant_id" gorm:"not null"`
	MenuItemID      uint    `json:"menu_item_id" gorm:"not null"`
	Name            string  `json:"name"`    // snapshot name at time of request
	Price           float64 `json:"price"`   // snapshot price
	Quantity        int     `json:"quantity" gorm:"not null"`
}
