package calendar

import (
	"time"
)

const ReasonBooking = "booking"

// CalendarBlock reserves a date range on a listing for a confirmed booking.
type CalendarBlock struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ListingID string    `gorm:"type:varchar(36);not null;index" json:"listing_id"`
	BookingID *string   `gorm:"type:varchar(36);uniqueIndex" json:"booking_id,omitempty"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason    string    `gorm:"type:varchar(50);not null" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
