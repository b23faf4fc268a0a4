package notification

import (
	"warehouse-booking/middleware"
	"warehouse-booking/services/notifier"
	notificationTypes "warehouse-booking/types/notification"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// NotificationController serves the caller's inbox
type NotificationController struct {
	Inbox *notifier.Inbox
}

func NewNotificationController(inbox *notifier.Inbox) *NotificationController {
	return &NotificationController{Inbox: inbox}
}

func (nc *NotificationController) Index(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var query notificationTypes.ListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequest(c, "Invalid query parameters")
	}

	rows, pagination, err := nc.Inbox.List(actor.ID, query.UnreadOnly, query.Page, query.PerPage)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Notifications fetched successfully", fiber.Map{
		"notifications": rows,
		"pagination":    pagination,
	})
}

func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var req notificationTypes.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.RespondError(c, err)
	}

	updated, err := nc.Inbox.MarkRead(actor.ID, req.NotificationIDs, req.ReadAll)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Notifications marked as read", fiber.Map{"updated": updated})
}

func (nc *NotificationController) UnreadCount(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	count, err := nc.Inbox.UnreadCount(actor.ID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.Respond(c, fiber.StatusOK, "Unread count fetched successfully", fiber.Map{"unread_count": count})
}
