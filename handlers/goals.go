package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finbuddy-go-be/database"
	"finbuddy-go-be/finance"
	"finbuddy-go-be/models"
)

// GoalRequest is the payload for creating a savings goal.
type GoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"target_amount"`
}

// ContributeRequest adds a fixed amount to a goal's progress.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse is a goal with its derived progress percentage.
type GoalResponse struct {
	models.Goal
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

func goalResponse(g models.Goal) GoalResponse {
	return GoalResponse{
		Goal:      g,
		Progress:  finance.GoalProgressPercent(g),
		Completed: g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount),
	}
}

// CreateGoal creates a savings goal with zero progress.
func CreateGoal(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Please fill in all fields"})
	}
	if !req.TargetAmount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Target amount must be positive"})
	}

	goal := models.Goal{
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create goal"})
	}
	return c.Status(fiber.StatusCreated).JSON(goalResponse(goal))
}

// ListGoals returns the user's goals with derived progress, newest first.
func ListGoals(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var goals []models.Goal
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalResponse(g))
	}
	return c.JSON(out)
}

// ContributeGoal increases a goal's current amount by the given
// contribution. CurrentAmount only ever moves up.
func ContributeGoal(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	var req ContributeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !req.Amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Contribution must be positive"})
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(req.Amount)
	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal"})
	}
	return c.JSON(goalResponse(goal))
}

// DeleteGoal removes a goal.
func DeleteGoal(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	return c.JSON(fiber.Map{"message": "Goal deleted"})
}
