package listing

import (
	"time"

	"warehouse-booking/models/user"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityRented      AvailabilityStatus = "rented"
)

// Listing is a warehouse space offered by a host. Listings are owned by the
// listing catalogue; bookings only read them.
type Listing struct {
	ID     string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	HostID string    `gorm:"type:varchar(36);not null;index" json:"host_id"`
	Host   user.User `gorm:"foreignKey:HostID" json:"-"`

	Title                  string             `gorm:"type:varchar(255);not null" json:"title"`
	Description            *string            `gorm:"type:text" json:"description,omitempty"`
	Address                string             `gorm:"type:varchar(255);not null" json:"address"`
	City                   string             `gorm:"type:varchar(120);not null" json:"city"`
	Province               string             `gorm:"type:varchar(120);not null" json:"province"`
	SizeSqft               int                `gorm:"not null" json:"size_sqft"`
	PricePerMonth          float64            `gorm:"type:decimal(12,2);not null" json:"price_per_month"`
	Currency               string             `gorm:"type:varchar(3);not null;default:CAD" json:"currency"`
	AvailabilityStatus     AvailabilityStatus `gorm:"type:varchar(20);not null;default:available" json:"availability_status"`
	FulfillmentAvailable   bool               `gorm:"default:false" json:"fulfillment_available"`
	FulfillmentDescription *string            `gorm:"type:text" json:"fulfillment_description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
