package middleware

import (
	"quizapp/backend/config"
	"quizapp/backend/models"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const userLocal = "currentUser"

// Protect validates the bearer token and loads the authenticated user into
// the request locals for downstream handlers.
func Protect(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Not authorized, no valid token")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "Not authorized, user no longer exists")
		}

		c.Locals(userLocal, &user)
		return c.Next()
	}
}

// AdminOnly requires the authenticated user to have the admin role. Must run
// after Protect.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return utils.Unauthorized(c, "Not authorized")
		}
		if !user.IsAdmin() {
			return utils.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user loaded by Protect, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}
