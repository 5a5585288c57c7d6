package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finbuddy-go-be/database"
	"finbuddy-go-be/finance"
	"finbuddy-go-be/models"
)

// ParticipantInput is one named share submitted with a split.
type ParticipantInput struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SplitRequest creates a split expense with its participants.
type SplitRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	ReceiptURL   string             `json:"receipt_url"`
	Participants []ParticipantInput `json:"participants"`
}

// QuickSplitRequest asks for an even division of a total.
type QuickSplitRequest struct {
	Total decimal.Decimal `json:"total"`
	Names []string        `json:"names"`
}

// CreateSplit stores a split expense. The total is recomputed as the sum
// of the submitted participant amounts, never taken from the client.
func CreateSplit(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req SplitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please fill in all fields"})
	}

	// Unnamed slots and empty shares are dropped, as on the form.
	participants := make([]models.SplitParticipant, 0, len(req.Participants))
	total := decimal.Zero
	for _, p := range req.Participants {
		if strings.TrimSpace(p.Name) == "" || p.Amount.IsZero() {
			continue
		}
		if p.Amount.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Participant amounts must not be negative"})
		}
		participants = append(participants, models.SplitParticipant{Name: p.Name, Amount: p.Amount})
		total = total.Add(p.Amount)
	}
	if len(participants) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Add at least one participant with an amount"})
	}

	split := models.SplitExpense{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		TotalAmount:  total,
		ReceiptURL:   req.ReceiptURL,
		Participants: participants,
	}
	if err := database.DB.Create(&split).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create split"})
	}
	return c.Status(fiber.StatusCreated).JSON(split)
}

// ListSplits returns the user's splits with participants, newest first.
func ListSplits(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var splits []models.SplitExpense
	if err := database.DB.Preload("Participants").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&splits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch splits"})
	}
	return c.JSON(splits)
}

// QuickSplit pre-fills even shares for the submitted names. Nothing is
// stored; the caller may hand-edit before creating the split.
func QuickSplit(c *fiber.Ctx) error {
	var req QuickSplitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	shares, err := finance.SplitEvenly(req.Total, req.Names)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// All shares are identical; surface one of them as the per-person value.
	var perPerson decimal.Decimal
	for _, v := range shares {
		perPerson = v
		break
	}
	return c.JSON(fiber.Map{"per_person": perPerson, "shares": shares})
}

// UpdateParticipantPaid toggles a participant's paid flag.
func UpdateParticipantPaid(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid participant id"})
	}

	var req struct {
		IsPaid bool `json:"is_paid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var participant models.SplitParticipant
	if err := database.DB.First(&participant, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
	}

	// Ownership check goes through the parent split.
	var split models.SplitExpense
	if err := database.DB.Where("id = ? AND user_id = ?", participant.SplitExpenseID, userID).First(&split).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
	}

	participant.IsPaid = req.IsPaid
	if err := database.DB.Save(&participant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update participant"})
	}
	return c.JSON(participant)
}

// DeleteSplit removes a split together with all its participants.
func DeleteSplit(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid split id"})
	}

	var split models.SplitExpense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&split).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Split not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("split_expense_id = ?", split.ID).Delete(&models.SplitParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&split).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete split"})
	}
	return c.JSON(fiber.Map{"message": "Split deleted"})
}
