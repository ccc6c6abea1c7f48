package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
)

type UserController struct {
	DB *gorm.DB
}

// POST /users
//
// Registration is a no-op when the email is already known; the client calls
// this on every login.
func (uc *UserController) Create(c *fiber.Ctx) error {
	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if user.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email is required"})
	}

	var existing model.User
	if err := uc.DB.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return c.JSON(fiber.Map{"message": "user exist"})
	}

	user.ID = 0
	user.Role = "user"
	user.CreatedAt = time.Now()

	if err := uc.DB.Create(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create user"})
	}

	return c.Status(201).JSON(user)
}
