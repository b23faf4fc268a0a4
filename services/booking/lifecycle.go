package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse-booking/apperror"
	"warehouse-booking/logger"
	agreementModel "warehouse-booking/models/agreement"
	bookingModel "warehouse-booking/models/booking"
	inventoryModel "warehouse-booking/models/inventory"
	notificationModel "warehouse-booking/models/notification"
	userModel "warehouse-booking/models/user"
	"warehouse-booking/services/agreement"
	"warehouse-booking/services/booking_event"
	"warehouse-booking/services/inventory"
	"warehouse-booking/services/listing"
	"warehouse-booking/services/notifier"
	"warehouse-booking/types"
	inventoryTypes "warehouse-booking/types/inventory"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateInput is a renter's booking request.
type CreateInput struct {
	ListingID          string
	StartDate          time.Time
	EndDate            time.Time
	SpaceRequestedSqft *int
	Inventory          []inventoryTypes.InventoryItemRequest
}

func (in CreateInput) validate() error {
	if in.ListingID == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return apperror.Validation("Missing required fields: listing_id, start_date, end_date")
	}
	if in.EndDate.Before(in.StartDate) {
		return apperror.Validation("end_date must not be before start_date")
	}
	if in.SpaceRequestedSqft != nil && *in.SpaceRequestedSqft <= 0 {
		return apperror.Validation("space_requested_sqft must be positive")
	}
	for i, item := range in.Inventory {
		if item.Name == "" {
			return apperror.Validation("inventory[%d]: missing required field: name", i)
		}
	}
	return nil
}

func (s *Service) notify(tx *gorm.DB, recipientID string, kind notificationModel.Type, title, message, bookingID string) {
	s.Notifier.Notify(tx, notifier.Notice{
		RecipientID:       recipientID,
		Type:              kind,
		Title:             title,
		Message:           message,
		RelatedEntityType: notificationModel.EntityBooking,
		RelatedEntityID:   bookingID,
	})
}

// Create opens a booking on an available listing, generates the draft
// agreement and notifies the host. The booking passes through pending_review
// and leaves the call in agreement_draft.
func (s *Service) Create(actor types.Actor, in CreateInput) (*Detail, error) {
	if actor.Role != userModel.RoleRenter {
		return nil, apperror.Forbidden("Only renters can create booking requests")
	}
	in.StartDate = now.With(in.StartDate).BeginningOfDay()
	in.EndDate = now.With(in.EndDate).BeginningOfDay()
	if err := in.validate(); err != nil {
		return nil, err
	}

	var detail *Detail
	err := s.transact(func(tx *gorm.DB) error {
		snapshot, err := s.Listings.Find(tx, in.ListingID)
		if err != nil {
			if errors.Is(err, listing.ErrListingNotFound) {
				return apperror.NotFound("Listing not found")
			}
			return err
		}
		if !snapshot.IsAvailable() {
			return apperror.Conflict("This listing is not currently available")
		}
		if !snapshot.HostApproved {
			return apperror.Conflict("This listing's host is not approved")
		}
		if snapshot.Listing.HostID == actor.ID {
			return apperror.Forbidden("Hosts cannot book their own listing")
		}

		b := bookingModel.Booking{
			ID:                 uuid.NewString(),
			ListingID:          snapshot.Listing.ID,
			RenterID:           actor.ID,
			HostID:             snapshot.Listing.HostID,
			StartDate:          in.StartDate,
			EndDate:            in.EndDate,
			SpaceRequestedSqft: in.SpaceRequestedSqft,
			MonthlyRate:        snapshot.Listing.PricePerMonth,
			Status:             bookingModel.BookingStatusPendingReview,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		if err := booking_event.RecordStatusChange(tx, b.ID, nil, b.Status, actor.ID); err != nil {
			return err
		}

		items := make([]inventoryModel.InventoryItem, 0, len(in.Inventory))
		for _, req := range in.Inventory {
			items = append(items, inventory.BuildItem(b.ID, actor.ID, req))
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		content := s.Generator.Generate(
			agreement.Terms{
				StartDate:          b.StartDate,
				EndDate:            b.EndDate,
				SpaceRequestedSqft: b.SpaceRequestedSqft,
				MonthlyRate:        b.MonthlyRate,
			},
			listingSnapshot(snapshot),
			items,
		)
		a := agreementModel.StorageAgreement{
			ID:        uuid.NewString(),
			BookingID: b.ID,
			Content:   datatypes.NewJSONType(content),
			Status:    agreementModel.AgreementStatusDraft,
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}

		s.notify(tx, b.HostID, notificationModel.TypeBookingRequest, "New Booking Request",
			fmt.Sprintf("New booking request for %q", snapshot.Listing.Title), b.ID)

		if err := s.setStatus(tx, &b, bookingModel.BookingStatusAgreementDraft, actor.ID, nil); err != nil {
			return err
		}

		detail, err = loadDetail(tx, b.ID)
		return err
	})
	if err != nil {
		logger.Error("Failed to create booking", err)
		return nil, err
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %s", detail.Booking.ID))
	return detail, nil
}

func listingSnapshot(snapshot *listing.Snapshot) agreement.ListingSnapshot {
	l := snapshot.Listing
	out := agreement.ListingSnapshot{
		Title:                l.Title,
		SizeSqft:             l.SizeSqft,
		City:                 l.City,
		Province:             l.Province,
		Currency:             l.Currency,
		FulfillmentAvailable: l.FulfillmentAvailable,
	}
	if l.FulfillmentDescription != nil {
		out.FulfillmentDescription = *l.FulfillmentDescription
	}
	return out
}

// EditAgreement merges a host edit into the agreement and hands it to the
// renter for review.
func (s *Service) EditAgreement(actor types.Actor, bookingID string, edit agreement.Edit) (*Detail, error) {
	if edit.IsEmpty() {
		return nil, apperror.Validation("Provide at least one of: sections, special_conditions, notes")
	}

	var detail *Detail
	err := s.transact(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.HostID != actor.ID {
			return apperror.Forbidden("Only the host can perform this action")
		}
		if !b.Status.CanEditAgreement() {
			return apperror.Conflict("cannot edit agreement: booking is %s", b.Status)
		}

		a, err := loadAgreement(tx, b.ID)
		if err != nil {
			return err
		}
		content := agreement.Apply(a.Content.Data(), edit)
		result := tx.Model(&agreementModel.StorageAgreement{}).
			Where("id = ?", a.ID).
			Updates(map[string]interface{}{
				"content":    datatypes.NewJSONType(content),
				"status":     agreementModel.AgreementStatusHostEdited,
				"updated_at": s.now(),
			})
		if result.Error != nil {
			return result.Error
		}

		if b.Status != bookingModel.BookingStatusHostEdited {
			if err := s.setStatus(tx, b, bookingModel.BookingStatusHostEdited, actor.ID, nil); err != nil {
				return err
			}
		}

		s.notify(tx, b.RenterID, notificationModel.TypeAgreementReady, "Storage Agreement Updated",
			"The host has updated the storage agreement. Please review and sign.", b.ID)

		detail, err = loadDetail(tx, b.ID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to edit agreement of booking %s", bookingID), err)
		return nil, err
	}

	logger.Success(fmt.Sprintf("Agreement of booking %s edited by host", bookingID))
	return detail, nil
}

type party struct {
	name   string
	column string
}

var (
	hostParty   = party{name: "Host", column: "host_accepted_at"}
	renterParty = party{name: "Renter", column: "renter_accepted_at"}
)

// AcceptAgreement records the actor's one-shot signature. The second
// signature confirms the booking, reserves the calendar and notifies both
// parties, all inside the same transaction.
func (s *Service) AcceptAgreement(actor types.Actor, bookingID string) (*Detail, error) {
	var (
		detail    *Detail
		confirmed bool
	)
	err := s.transact(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParticipant(actor.ID) {
			return apperror.Forbidden("You do not have access to this booking")
		}
		if !b.Status.CanAcceptAgreement() {
			return apperror.Conflict("cannot accept: booking is %s", b.Status)
		}

		a, err := loadAgreement(tx, b.ID)
		if err != nil {
			return err
		}

		signer, alreadySigned := renterParty, a.RenterAcceptedAt != nil
		if actor.ID == b.HostID {
			signer, alreadySigned = hostParty, a.HostAcceptedAt != nil
		}
		if alreadySigned {
			return apperror.Conflict("%s has already signed this agreement", signer.name)
		}

		signedAt := s.now()
		result := tx.Model(&agreementModel.StorageAgreement{}).
			Where("id = ? AND "+signer.column+" IS NULL", a.ID).
			Updates(map[string]interface{}{
				signer.column: signedAt,
				"updated_at":  signedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return apperror.Conflict("%s has already signed this agreement", signer.name)
		}

		s.notify(tx, b.Counterpart(actor.ID), notificationModel.TypeAgreementSigned, "Agreement Signed",
			fmt.Sprintf("The %s has signed the storage agreement.", strings.ToLower(signer.name)), b.ID)

		a, err = loadAgreement(tx, b.ID)
		if err != nil {
			return err
		}

		switch {
		case a.IsFullyAccepted():
			if err := s.confirm(tx, b, a, actor.ID, signedAt); err != nil {
				return err
			}
			confirmed = true
		case signer == renterParty && b.Status == bookingModel.BookingStatusHostEdited:
			if err := s.setStatus(tx, b, bookingModel.BookingStatusRenterAccepted, actor.ID, nil); err != nil {
				return err
			}
		}

		detail, err = loadDetail(tx, b.ID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to accept agreement of booking %s", bookingID), err)
		return nil, err
	}

	if confirmed {
		logger.Success(fmt.Sprintf("Booking %s confirmed, agreement fully accepted", bookingID))
	} else {
		logger.Success(fmt.Sprintf("Agreement of booking %s signed by %s", bookingID, actor.ID))
	}
	return detail, nil
}

// confirm is the derived transition fired by the second signature.
func (s *Service) confirm(tx *gorm.DB, b *bookingModel.Booking, a *agreementModel.StorageAgreement, actorID string, at time.Time) error {
	result := tx.Model(&agreementModel.StorageAgreement{}).
		Where("id = ? AND status <> ?", a.ID, agreementModel.AgreementStatusFullyAccepted).
		Updates(map[string]interface{}{
			"status":     agreementModel.AgreementStatusFullyAccepted,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return apperror.Conflict("cannot accept: agreement is already fully accepted")
	}

	if err := s.setStatus(tx, b, bookingModel.BookingStatusConfirmed, actorID, map[string]interface{}{
		"confirmed_at": at,
	}); err != nil {
		return err
	}

	if _, err := s.Calendar.Reserve(tx, b); err != nil {
		return err
	}

	s.notify(tx, b.RenterID, notificationModel.TypeBookingApproved, "Booking Confirmed",
		"Your booking has been confirmed. The storage agreement has been signed by both parties.", b.ID)
	s.notify(tx, b.HostID, notificationModel.TypeBookingApproved, "Booking Confirmed",
		"The booking has been confirmed. The storage agreement has been signed by both parties.", b.ID)
	return nil
}

// RejectBooking lets the host decline a booking that has not been signed yet.
func (s *Service) RejectBooking(actor types.Actor, bookingID string, reason *string) (*Detail, error) {
	var detail *Detail
	err := s.transact(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.HostID != actor.ID {
			return apperror.Forbidden("Only the host can perform this action")
		}
		if !b.Status.CanBeRejected() {
			return apperror.Conflict("cannot reject: booking is %s", b.Status)
		}

		extra := map[string]interface{}{}
		message := "Your booking request has been declined."
		if reason != nil && *reason != "" {
			extra["rejected_reason"] = *reason
			message = *reason
		}
		if err := s.setStatus(tx, b, bookingModel.BookingStatusRejected, actor.ID, extra); err != nil {
			return err
		}

		s.notify(tx, b.RenterID, notificationModel.TypeBookingRejected, "Booking Request Rejected", message, b.ID)

		detail, err = loadDetail(tx, b.ID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to reject booking %s", bookingID), err)
		return nil, err
	}

	logger.Success(fmt.Sprintf("Booking %s rejected by host", bookingID))
	return detail, nil
}

// CancelBooking lets either participant cancel. A confirmed booking loses its
// calendar block; the signed agreement stays as it is.
func (s *Service) CancelBooking(actor types.Actor, bookingID string) (*Detail, error) {
	var detail *Detail
	err := s.transact(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if !b.IsParticipant(actor.ID) {
			return apperror.Forbidden("You do not have access to this booking")
		}
		if !b.Status.CanBeCancelled() {
			return apperror.Conflict("cannot cancel: booking is %s", b.Status)
		}

		cancelledBy := actor.ID
		if err := s.setStatus(tx, b, bookingModel.BookingStatusCancelled, actor.ID, map[string]interface{}{
			"cancelled_by": cancelledBy,
			"cancelled_at": s.now(),
		}); err != nil {
			return err
		}

		if _, err := s.Calendar.Release(tx, b.ID); err != nil {
			return err
		}

		s.notify(tx, b.Counterpart(actor.ID), notificationModel.TypeBookingCancelled, "Booking Cancelled",
			"The booking has been cancelled.", b.ID)

		detail, err = loadDetail(tx, b.ID)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to cancel booking %s", bookingID), err)
		return nil, err
	}

	logger.Success(fmt.Sprintf("Booking %s cancelled by %s", bookingID, actor.ID))
	return detail, nil
}
