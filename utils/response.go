package utils

import (
	"warehouse-booking/apperror"
	"warehouse-booking/types"

	"github.com/gofiber/fiber/v2"
)

// Respond writes a successful ApiResponse.
func Respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(types.ApiResponse{
		Message: message,
		Status:  status,
		Data:    data,
	})
}

// RespondError writes err as an ApiResponse carrying its kind as the code.
// Internal details never reach the client.
func RespondError(c *fiber.Ctx, err error) error {
	status := apperror.HTTPStatus(err)
	return c.Status(status).JSON(types.ApiResponse{
		Message: apperror.MessageOf(err),
		Status:  status,
		Code:    string(apperror.KindOf(err)),
	})
}

// BadRequest reports an unparsable request body or query.
func BadRequest(c *fiber.Ctx, message string) error {
	return RespondError(c, apperror.Validation("%s", message))
}

// Unauthenticated reports a handler reached without an authenticated actor.
func Unauthenticated(c *fiber.Ctx) error {
	return RespondError(c, &apperror.Error{Kind: apperror.KindUnauthorized, Message: "Authentication required"})
}
