package controllers

import (
	"errors"
	"strconv"

	"quizapp/backend/config"
	"quizapp/backend/models"
	"quizapp/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserController covers the admin user-management surface.
type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetAllUsers returns every user without password hashes.
func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	result := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		result = append(result, users[i].Public())
	}

	return utils.SuccessWithCount(c, fiber.StatusOK, result, len(result))
}

type UpdateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUser changes username, email, role or password for any user.
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		if input.Role != models.RoleUser && input.Role != models.RoleAdmin {
			return utils.BadRequest(c, "Invalid role")
		}
		user.Role = input.Role
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.BadRequest(c, "Username or email already in use")
	}

	return utils.Success(c, fiber.StatusOK, user.Public())
}

// DeleteUser removes a user. Quizzes and submissions referencing the user are
// left in place; references are non-owning.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, err.Error())
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	return utils.Message(c, fiber.StatusOK, "User deleted successfully")
}
