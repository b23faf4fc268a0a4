package booking

import (
	"time"
)

// Booking is one renter request against one listing. HostID and MonthlyRate
// are copied from the listing when the booking is created and never follow
// later listing edits.
type Booking struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ListingID string `gorm:"type:varchar(36);not null;index" json:"listing_id"`
	RenterID  string `gorm:"type:varchar(36);not null;index" json:"renter_id"`
	HostID    string `gorm:"type:varchar(36);not null;index" json:"host_id"`

	StartDate          time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate            time.Time `gorm:"type:date;not null" json:"end_date"`
	SpaceRequestedSqft *int      `gorm:"" json:"space_requested_sqft,omitempty"`
	MonthlyRate        float64   `gorm:"type:decimal(12,2);not null" json:"monthly_rate"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:pending_review;index" json:"status"`

	RejectedReason *string    `gorm:"type:text" json:"rejected_reason,omitempty"`
	CancelledBy    *string    `gorm:"type:varchar(36)" json:"cancelled_by,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsParticipant reports whether userID is the renter or the host.
func (b *Booking) IsParticipant(userID string) bool {
	return userID != "" && (userID == b.RenterID || userID == b.HostID)
}

// Counterpart returns the other participant of the booking.
func (b *Booking) Counterpart(userID string) string {
	if userID == b.RenterID {
		return b.HostID
	}
	return b.RenterID
}
