package booking

import (
	"fmt"

	"warehouse-booking/logger"
	"warehouse-booking/middleware"
	"warehouse-booking/services/agreement"
	bookingService "warehouse-booking/services/booking"
	bookingTypes "warehouse-booking/types/booking"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles booking lifecycle HTTP requests
type BookingController struct {
	Service *bookingService.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(service *bookingService.Service) *BookingController {
	return &BookingController{Service: service}
}

// Index lists the bookings visible to the caller
func (bc *BookingController) Index(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var query bookingTypes.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequest(c, "Invalid query parameters")
	}

	bookings, pagination, err := bc.Service.List(actor, query.Status, query.Page, query.PerPage)
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.Respond(c, fiber.StatusOK, "Bookings fetched successfully", fiber.Map{
		"bookings":   bookings,
		"pagination": pagination,
	})
}

// Show returns one booking with its agreement and inventory
func (bc *BookingController) Show(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	detail, err := bc.Service.Get(actor, c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Booking fetched successfully", detail)
}

// Store creates a booking request and its draft agreement
func (bc *BookingController) Store(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	detail, err := bc.Service.Create(actor, bookingService.CreateInput{
		ListingID:          req.ListingID,
		StartDate:          startDate,
		EndDate:            endDate,
		SpaceRequestedSqft: req.SpaceRequestedSqft,
		Inventory:          req.Inventory,
	})
	if err != nil {
		return utils.RespondError(c, err)
	}

	return utils.Respond(c, fiber.StatusCreated, "Booking request created successfully", detail)
}

// UpdateAgreement applies a host edit to the agreement
func (bc *BookingController) UpdateAgreement(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req bookingTypes.AgreementEditRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	detail, err := bc.Service.EditAgreement(actor, c.Params("id"), agreement.Edit{
		ReplaceSections:   req.Sections,
		SpecialConditions: req.SpecialConditions,
		Notes:             req.Notes,
	})
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Agreement updated successfully", detail)
}

// AcceptAgreement signs the agreement on behalf of the caller
func (bc *BookingController) AcceptAgreement(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	detail, err := bc.Service.AcceptAgreement(actor, c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}

	message := "Agreement accepted successfully"
	if detail.Agreement != nil && detail.Agreement.IsFullyAccepted() {
		message = "Agreement fully accepted. Booking confirmed."
	}
	return utils.Respond(c, fiber.StatusOK, message, detail)
}

// Reject declines a booking request
func (bc *BookingController) Reject(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req bookingTypes.RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.BadRequest(c, "Invalid request body")
		}
		if err := utils.ValidateStruct(&req); err != nil {
			return utils.RespondError(c, err)
		}
	}

	detail, err := bc.Service.RejectBooking(actor, c.Params("id"), req.Reason)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Booking rejected", detail)
}

// Cancel cancels a booking on behalf of either participant
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	detail, err := bc.Service.CancelBooking(actor, c.Params("id"))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Booking cancelled", detail)
}

// ListingCalendar lists the confirmed date ranges of a listing
func (bc *BookingController) ListingCalendar(c *fiber.Ctx) error {
	listingID := c.Params("id")
	blocks, err := bc.Service.Calendar.ForListing(bc.Service.DB, listingID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load calendar of listing %s", listingID), err)
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Calendar fetched successfully", fiber.Map{
		"listing_id": listingID,
		"blocks":     blocks,
	})
}
