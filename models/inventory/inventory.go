package inventory

import (
	"time"
)

type ItemType string

const (
	ItemTypePallet ItemType = "pallet"
	ItemTypeBox    ItemType = "box"
	ItemTypeItem   ItemType = "item"
)

// InventoryItem is a renter declared good stored under a booking.
type InventoryItem struct {
	ID         string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	BookingID  string   `gorm:"type:varchar(36);not null;index" json:"booking_id"`
	RenterID   string   `gorm:"type:varchar(36);not null;index" json:"renter_id"`
	Name       string   `gorm:"type:varchar(255);not null" json:"name"`
	Type       ItemType `gorm:"type:varchar(20);not null;default:item" json:"type"`
	SKU        *string  `gorm:"column:sku;type:varchar(120)" json:"sku,omitempty"`
	Quantity   int      `gorm:"not null;default:1" json:"quantity"`
	Category   *string  `gorm:"type:varchar(120)" json:"category,omitempty"`
	Dimensions *string  `gorm:"type:varchar(120)" json:"dimensions,omitempty"`
	WeightKg   *float64 `json:"weight_kg,omitempty"`
	Notes      *string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
