package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/kafka"
	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
)

type StaffController struct {
	DB       *gorm.DB
	Producer *kafka.Producer
}

var errApplicationNotFound = errors.New("application not found")

// GET /staffs
func (sc *StaffController) List(c *fiber.Ctx) error {
	q := sc.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var staffs []model.StaffApplication
	if err := q.Find(&staffs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch staff applications"})
	}

	return c.JSON(staffs)
}

// POST /staffs
func (sc *StaffController) Create(c *fiber.Ctx) error {
	var staff model.StaffApplication
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if staff.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email is required"})
	}

	staff.ID = 0
	staff.Status = "pending"
	staff.CreatedAt = time.Now()

	if err := sc.DB.Create(&staff).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create staff application"})
	}

	return c.Status(201).JSON(staff)
}

// PATCH /staffs/:id
//
// Status update and role promotion commit together; an approval can never
// land without its user promotion.
func (sc *StaffController) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var body struct {
		Status string `json:"status"`
		Email  string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if body.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "status is required"})
	}

	var modified int64
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.StaffApplication{}).
			Where("id = ?", id).
			Update("status", body.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errApplicationNotFound
		}
		modified = res.RowsAffected

		if body.Status == "approved" {
			if err := tx.Model(&model.User{}).
				Where("email = ?", body.Email).
				Update("role", "staff").Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errApplicationNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "staff application not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update staff application"})
	}

	if body.Status == "approved" {
		sc.Producer.PublishStaffApprovedEvent(map[string]interface{}{
			"event_type": "staff.approved",
			"data": map[string]interface{}{
				"application_id": id,
				"email":          body.Email,
			},
		})
	}

	return c.JSON(fiber.Map{"modifiedCount": modified})
}
