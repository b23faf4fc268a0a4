package routes

import (
	"warehouse-booking/config"
	"warehouse-booking/constants"
	"warehouse-booking/controllers/booking"
	"warehouse-booking/controllers/inventory"
	"warehouse-booking/controllers/notification"
	"warehouse-booking/controllers/user"
	httpServices "warehouse-booking/httpServices/sso"
	"warehouse-booking/logger"
	"warehouse-booking/middleware"
	"warehouse-booking/services/agreement"
	bookingService "warehouse-booking/services/booking"
	"warehouse-booking/services/calendar"
	inventoryService "warehouse-booking/services/inventory"
	"warehouse-booking/services/listing"
	"warehouse-booking/services/notifier"
	"warehouse-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every controller and returns the request logger so the
// caller can drain it on shutdown.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) *logger.AsyncLogger {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()

	verifier := middleware.NewTokenVerifier(cfg.JWTSecret, httpServices.NewClient(cfg.PublicKeyURL))

	lifecycle := bookingService.NewService(
		db,
		listing.NewRepository(),
		notifier.NewInboxNotifier(),
		calendar.NewLedger(),
		agreement.NewGenerator(cfg.PlatformName),
	)
	bookingController := booking.NewBookingController(lifecycle)
	inventoryController := inventory.NewInventoryController(inventoryService.NewService(db))
	notificationController := notification.NewNotificationController(notifier.NewInbox(db))
	userController := user.NewUserController(db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{Message: cfg.PlatformName + " booking service", Status: fiber.StatusOK})
	})

	api := app.Group("/api", middleware.RequestLogger(asyncLogger))
	authenticated := middleware.IsAuthenticated(db, verifier)

	/*=============================================================================
	| Account Routes
	===============================================================================*/
	auth := api.Group("/auth", authenticated)
	auth.Get("/profile", userController.GetUserInfo)

	// everything below is for approved accounts only
	approved := middleware.RequireApproved()

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings", authenticated, approved)
	bookingGroup.Get("/", bookingController.Index)
	bookingGroup.Post("/", middleware.RequireRoles(constants.RenterRoles...), bookingController.Store)
	bookingGroup.Get("/:id", bookingController.Show)

	bookingGroup.Put("/:id/agreement", middleware.RequireRoles(constants.HostRoles...), bookingController.UpdateAgreement)
	bookingGroup.Post("/:id/agreement/accept", middleware.RequireRoles(constants.ParticipantRoles...), bookingController.AcceptAgreement)
	bookingGroup.Post("/:id/reject", middleware.RequireRoles(constants.HostRoles...), bookingController.Reject)
	bookingGroup.Post("/:id/cancel", middleware.RequireRoles(constants.ParticipantRoles...), bookingController.Cancel)

	/*=============================================================================
	| Inventory Routes
	===============================================================================*/
	bookingGroup.Get("/:id/inventory", inventoryController.Index)
	bookingGroup.Post("/:id/inventory", middleware.RequireRoles(constants.RenterRoles...), inventoryController.Store)

	inventoryGroup := api.Group("/inventory", authenticated, approved, middleware.RequireRoles(constants.RenterRoles...))
	inventoryGroup.Put("/:inventoryId", inventoryController.Update)
	inventoryGroup.Delete("/:inventoryId", inventoryController.Destroy)

	/*=============================================================================
	| Listing Calendar Routes
	===============================================================================*/
	listingGroup := api.Group("/listings", authenticated, approved)
	listingGroup.Get("/:id/calendar", bookingController.ListingCalendar)

	/*=============================================================================
	| Notification Routes
	===============================================================================*/
	notificationGroup := api.Group("/notifications", authenticated, approved)
	notificationGroup.Get("/", notificationController.Index)
	notificationGroup.Post("/read", notificationController.MarkRead)
	notificationGroup.Get("/unread-count", notificationController.UnreadCount)

	return asyncLogger
}
