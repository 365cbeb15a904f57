package models

import "time"

// MenuItemStatus tracks a surplus item's lifecycle on the platform
type MenuItemStatus string

const (
	ItemAvailable MenuItemStatus = "available"
	ItemReserved  MenuItemStatus = "reserved"
	ItemExpired   MenuItemStatus = "expired"
	ItemCollected MenuItemStatus = "collected"
)

// ValidMenuItemStatus reports whether s is a member of the item status set
func ValidMenuItemStatus(s MenuItemStatus) bool {
	switch s {
	case ItemAvailable, ItemReserved, ItemExpired, ItemCollected:
		return true
	}
	return false
}

type MenuItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	Quantity     int            `json:"quantity" gorm:"not null;default:0"`
	Price        float64        `json:"price" gorm:"default:0"` // suggested donation value per unit
	Category     string         `json:"category"`
	ExpiryTime   *time.Time     `json:"expiry_time"`
	Status       MenuItemStatus `json:"status" gorm:"not null;default:'available'"`
	Image        string         `json:"image"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
