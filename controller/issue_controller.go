package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/HasiburRahmanDev/issue-reporting-system-server/model"
)

type IssueController struct {
	DB *gorm.DB
}

// GET /issues
func (ic *IssueController) List(c *fiber.Ctx) error {
	q := ic.DB.Order("created_at DESC")
	if email := c.Query("email"); email != "" {
		q = q.Where("email = ?", email)
	}

	var issues []model.Issue
	if err := q.Find(&issues).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch issues"})
	}

	return c.JSON(issues)
}

// GET /issues/:id
func (ic *IssueController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	var issue model.Issue
	if err := ic.DB.First(&issue, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "issue not found"})
	}

	return c.JSON(issue)
}

// POST /issues
func (ic *IssueController) Create(c *fiber.Ctx) error {
	var issue model.Issue
	if err := c.BodyParser(&issue); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if issue.Title == "" || issue.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title and email are required"})
	}

	issue.ID = 0
	issue.PaymentStatus = "" // payment fields belong to reconciliation only
	issue.TrackingID = ""
	issue.CreatedAt = time.Now()

	if err := ic.DB.Create(&issue).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create issue"})
	}

	return c.Status(201).JSON(issue)
}

// DELETE /issues/:id
func (ic *IssueController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}

	res := ic.DB.Delete(&model.Issue{}, id)
	if res.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete issue"})
	}
	if res.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "issue not found"})
	}

	return c.JSON(fiber.Map{"deletedCount": res.RowsAffected})
}
