package booking_event

import (
	bookingModel "warehouse-booking/models/booking"

	"gorm.io/gorm"
)

// RecordStatusChange appends a status transition row. It must run on the same
// transaction as the status write it describes.
func RecordStatusChange(tx *gorm.DB, bookingID string, from *bookingModel.BookingStatus, to bookingModel.BookingStatus, actorID string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID:  bookingID,
		FromStatus: from,
		ToStatus:   to,
		CreatedBy:  actorID,
	}
	return tx.Create(&ev).Error
}

// History returns the transitions of a booking, oldest first.
func History(db *gorm.DB, bookingID string) ([]bookingModel.BookingStatusEvent, error) {
	var events []bookingModel.BookingStatusEvent
	err := db.Where("booking_id = ?", bookingID).Order("id ASC").Find(&events).Error
	return events, err
}
