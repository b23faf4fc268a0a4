package calendar

import (
	"fmt"

	bookingModel "warehouse-booking/models/booking"
	calendarModel "warehouse-booking/models/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ledger records confirmed date ranges against listings, keyed by booking.
// It does not check for overlap with other bookings.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Reserve blocks the booking's dates on its listing.
func (l *Ledger) Reserve(tx *gorm.DB, b *bookingModel.Booking) (*calendarModel.CalendarBlock, error) {
	bookingID := b.ID
	block := calendarModel.CalendarBlock{
		ID:        uuid.NewString(),
		ListingID: b.ListingID,
		BookingID: &bookingID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    calendarModel.ReasonBooking,
	}
	if err := tx.Create(&block).Error; err != nil {
		return nil, fmt.Errorf("failed to create calendar block for booking %s: %w", b.ID, err)
	}
	return &block, nil
}

// Release removes any block held by the booking and reports how many rows went.
func (l *Ledger) Release(tx *gorm.DB, bookingID string) (int64, error) {
	result := tx.Where("booking_id = ?", bookingID).Delete(&calendarModel.CalendarBlock{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to release calendar block for booking %s: %w", bookingID, result.Error)
	}
	return result.RowsAffected, nil
}

// ForBooking returns the block held by the booking, or nil.
func (l *Ledger) ForBooking(db *gorm.DB, bookingID string) (*calendarModel.CalendarBlock, error) {
	var blocks []calendarModel.CalendarBlock
	if err := db.Where("booking_id = ?", bookingID).Limit(1).Find(&blocks).Error; err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	return &blocks[0], nil
}

// ForListing lists a listing's blocks ordered by start date.
func (l *Ledger) ForListing(db *gorm.DB, listingID string) ([]calendarModel.CalendarBlock, error) {
	var blocks []calendarModel.CalendarBlock
	err := db.Where("listing_id = ?", listingID).Order("start_date ASC").Find(&blocks).Error
	return blocks, err
}
