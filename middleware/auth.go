package middleware

import (
	"errors"

	"warehouse-booking/apperror"
	"warehouse-booking/logger"
	"warehouse-booking/models/user"
	"warehouse-booking/types"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const actorKey = "actor"

func deny(c *fiber.Ctx, status int, kind apperror.Kind, message string) error {
	return c.Status(status).JSON(types.ApiResponse{
		Message: message,
		Status:  status,
		Code:    string(kind),
	})
}

// IsAuthenticated verifies the bearer token, loads the matching user and
// stores it as the request's Actor.
func IsAuthenticated(db *gorm.DB, verifier *TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := utils.ExtractBearerToken(c)
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "Authorization token missing or malformed")
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.Warning("JWT verification failed: " + err.Error())
			return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "Session expired. Login again.")
		}

		uid, err := SubjectUUID(claims)
		if err != nil {
			return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "Session expired. Login again.")
		}

		u, err := utils.GetUserByUUID(db, uid)
		if err != nil {
			if errors.Is(err, utils.ErrUserNotFound) {
				return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "No account is registered for this user")
			}
			logger.Error("Failed to load authenticated user", err)
			return deny(c, fiber.StatusInternalServerError, apperror.KindInternal, "Internal server error")
		}

		c.Locals("user", claims)
		c.Locals(actorKey, types.ActorFromUser(u))
		return c.Next()
	}
}

// CurrentActor returns the Actor stored by IsAuthenticated.
func CurrentActor(c *fiber.Ctx) (types.Actor, bool) {
	actor, ok := c.Locals(actorKey).(types.Actor)
	return actor, ok
}

// RequireApproved only lets accounts approved by an admin through.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := CurrentActor(c)
		if !ok {
			return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "Authentication required")
		}
		switch actor.ApprovalStatus {
		case user.ApprovalApproved:
			return c.Next()
		case user.ApprovalRejected:
			return deny(c, fiber.StatusForbidden, apperror.KindRejectedAccount, "Your account has been rejected")
		default:
			return deny(c, fiber.StatusForbidden, apperror.KindPendingApproval, "Your account is pending approval")
		}
	}
}

// RequireRoles allows the listed roles; admins always pass.
func RequireRoles(roles ...user.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := CurrentActor(c)
		if !ok {
			return deny(c, fiber.StatusUnauthorized, apperror.KindUnauthorized, "Authentication required")
		}
		if actor.IsAdmin() {
			return c.Next()
		}
		for _, role := range roles {
			if actor.Role == role {
				return c.Next()
			}
		}
		return deny(c, fiber.StatusForbidden, apperror.KindForbidden, "Insufficient permissions")
	}
}
