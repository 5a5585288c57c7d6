package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finbuddy-go-be/database"
	"finbuddy-go-be/models"
)

// IncomeRequest is the payload for creating or updating an income record.
type IncomeRequest struct {
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	HustleType    string          `json:"hustle_type"`
	Note          string          `json:"note"`
	ScreenshotURL string          `json:"screenshot_url"`
}

var incomeCategories = map[string]bool{
	"gig":       true,
	"allowance": true,
	"job":       true,
	"other":     true,
}

func (r IncomeRequest) validate() string {
	if r.Title == "" || r.Category == "" {
		return "Please fill in all fields"
	}
	if !incomeCategories[r.Category] {
		return "Unknown income category"
	}
	if r.Amount.IsNegative() {
		return "Amount must not be negative"
	}
	return ""
}

// CreateIncome logs a new earning for the user.
func CreateIncome(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req IncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	income := models.Income{
		UserID:        userID,
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		HustleType:    req.HustleType,
		Note:          req.Note,
		ScreenshotURL: req.ScreenshotURL,
	}
	if err := database.DB.Create(&income).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save income"})
	}
	return c.Status(fiber.StatusCreated).JSON(income)
}

// ListIncomes returns the user's income records, newest first.
func ListIncomes(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var incomes []models.Income
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&incomes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch incomes"})
	}
	return c.JSON(incomes)
}

// UpdateIncome edits an existing income record.
func UpdateIncome(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid income id"})
	}

	var req IncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	var income models.Income
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&income).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Income not found"})
	}

	income.Title = req.Title
	income.Amount = req.Amount
	income.Category = req.Category
	income.HustleType = req.HustleType
	income.Note = req.Note
	income.ScreenshotURL = req.ScreenshotURL

	if err := database.DB.Save(&income).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update income"})
	}
	return c.JSON(income)
}

// DeleteIncome removes an income record.
func DeleteIncome(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid income id"})
	}

	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Income{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete income"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Income not found"})
	}
	return c.JSON(fiber.Map{"message": "Income deleted"})
}
