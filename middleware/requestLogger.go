package middleware

import (
	"warehouse-booking/logger"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger hands every finished request to the async logger.
func RequestLogger(async *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		var actorID string
		if actor, ok := CurrentActor(c); ok {
			actorID = actor.ID
		}
		async.Log(utils.CreateSanitizedLogEntry(c, actorID))
		return err
	}
}
