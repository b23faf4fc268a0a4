package booking

import (
	"errors"
	"time"

	"warehouse-booking/apperror"
	agreementModel "warehouse-booking/models/agreement"
	bookingModel "warehouse-booking/models/booking"
	inventoryModel "warehouse-booking/models/inventory"
	"warehouse-booking/services/agreement"
	"warehouse-booking/services/booking_event"
	"warehouse-booking/services/calendar"
	"warehouse-booking/services/inventory"
	"warehouse-booking/services/listing"
	"warehouse-booking/services/notifier"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Detail is a booking returned together with its agreement and inventory.
type Detail struct {
	Booking   bookingModel.Booking             `json:"booking"`
	Agreement *agreementModel.StorageAgreement `json:"agreement"`
	Inventory []inventoryModel.InventoryItem   `json:"inventory"`
}

// Service is the booking lifecycle controller. Every mutating operation runs
// as one transaction: the status read, the status and agreement writes, the
// side effect rows and the read back commit or roll back together.
type Service struct {
	DB        *gorm.DB
	Listings  listing.Lookup
	Notifier  notifier.Notifier
	Calendar  *calendar.Ledger
	Generator *agreement.Generator
	Now       func() time.Time
}

func NewService(db *gorm.DB, listings listing.Lookup, n notifier.Notifier, ledger *calendar.Ledger, generator *agreement.Generator) *Service {
	return &Service{
		DB:        db,
		Listings:  listings,
		Notifier:  n,
		Calendar:  ledger,
		Generator: generator,
		Now:       time.Now,
	}
}

func (s *Service) now() time.Time {
	return s.Now().UTC()
}

// transact runs fn in a transaction and converts untyped failures into
// internal errors.
func (s *Service) transact(fn func(tx *gorm.DB) error) error {
	err := s.DB.Transaction(fn)
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal("booking storage failure", err)
}

// lockBooking loads a booking and holds its row for the rest of the transaction.
func lockBooking(tx *gorm.DB, bookingID string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func loadAgreement(tx *gorm.DB, bookingID string) (*agreementModel.StorageAgreement, error) {
	var a agreementModel.StorageAgreement
	if err := tx.First(&a, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Agreement not found")
		}
		return nil, err
	}
	return &a, nil
}

func loadDetail(tx *gorm.DB, bookingID string) (*Detail, error) {
	var b bookingModel.Booking
	if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Booking not found")
		}
		return nil, err
	}
	detail := &Detail{Booking: b}

	var agreements []agreementModel.StorageAgreement
	if err := tx.Where("booking_id = ?", bookingID).Limit(1).Find(&agreements).Error; err != nil {
		return nil, err
	}
	if len(agreements) == 1 {
		detail.Agreement = &agreements[0]
	}

	items, err := inventory.ForBooking(tx, bookingID)
	if err != nil {
		return nil, err
	}
	detail.Inventory = items
	return detail, nil
}

// setStatus moves b to status, guarded on b's current status so that a
// concurrent writer can never be overwritten, and appends the audit row.
func (s *Service) setStatus(tx *gorm.DB, b *bookingModel.Booking, to bookingModel.BookingStatus, actorID string, extra map[string]interface{}) error {
	from := b.Status
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": s.now(),
	}
	for k, v := range extra {
		updates[k] = v
	}

	result := tx.Model(&bookingModel.Booking{}).
		Where("id = ? AND status = ?", b.ID, from).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return apperror.Conflict("booking %s changed while moving from %s to %s", b.ID, from, to)
	}

	if err := booking_event.RecordStatusChange(tx, b.ID, &from, to, actorID); err != nil {
		return err
	}
	b.Status = to
	return nil
}
