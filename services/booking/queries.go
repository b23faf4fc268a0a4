package booking

import (
	"fmt"

	"warehouse-booking/apperror"
	bookingModel "warehouse-booking/models/booking"
	userModel "warehouse-booking/models/user"
	"warehouse-booking/types"

	"gorm.io/gorm"
)

// Get returns a booking with its agreement and inventory to a participant or
// an admin.
func (s *Service) Get(actor types.Actor, bookingID string) (*Detail, error) {
	detail, err := loadDetail(s.DB, bookingID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		return nil, apperror.Internal("failed to load booking", err)
	}
	if !actor.IsAdmin() && !detail.Booking.IsParticipant(actor.ID) {
		return nil, apperror.Forbidden("You do not have access to this booking")
	}
	return detail, nil
}

// List pages through the bookings visible to the actor: renters see their own
// requests, hosts the requests on their listings and admins everything.
func (s *Service) List(actor types.Actor, status string, page, perPage int) ([]bookingModel.Booking, types.Pagination, error) {
	page, perPage = types.NormalizePage(page, perPage)

	var filter bookingModel.BookingStatus
	if status != "" {
		filter = bookingModel.BookingStatus(status)
		if !filter.IsValid() {
			return nil, types.Pagination{}, apperror.Validation("invalid booking status: %s", status)
		}
	}

	scoped := func() *gorm.DB {
		q := s.DB.Model(&bookingModel.Booking{})
		switch actor.Role {
		case userModel.RoleAdmin:
		case userModel.RoleHost:
			q = q.Where("host_id = ?", actor.ID)
		default:
			q = q.Where("renter_id = ?", actor.ID)
		}
		if filter != "" {
			q = q.Where("status = ?", filter)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, types.Pagination{}, apperror.Internal("failed to count bookings", err)
	}

	var bookings []bookingModel.Booking
	err := scoped().
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&bookings).Error
	if err != nil {
		return nil, types.Pagination{}, apperror.Internal(fmt.Sprintf("failed to list bookings for %s", actor.ID), err)
	}

	return bookings, types.NewPagination(page, perPage, total), nil
}
