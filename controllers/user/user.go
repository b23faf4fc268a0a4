package user

import (
	"errors"

	"warehouse-booking/apperror"
	"warehouse-booking/logger"
	"warehouse-booking/middleware"
	"warehouse-booking/models/user"
	"warehouse-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetUserInfo returns the caller's account, including its approval status,
// so pending accounts can see why they are gated.
func (uc *UserController) GetUserInfo(c *fiber.Ctx) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.Unauthenticated(c)
	}

	var u user.User
	if err := uc.DB.Where("id = ?", actor.ID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondError(c, apperror.NotFound("User not found"))
		}
		logger.Error("Error fetching user", err)
		return utils.RespondError(c, apperror.Internal("error fetching user", err))
	}

	userInfo := map[string]interface{}{
		"id":              u.ID,
		"uuid":            u.Uuid,
		"email":           u.Email,
		"full_name":       u.FullName,
		"role":            u.Role,
		"approval_status": u.ApprovalStatus,
		"phone":           u.Phone,
		"created_at":      u.CreatedAt.Format("2006-01-02 15:04:05"),
		"updated_at":      u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	logger.Success("User fetched successfully")
	return utils.Respond(c, fiber.StatusOK, "User fetched successfully", userInfo)
}
