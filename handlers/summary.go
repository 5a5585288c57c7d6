package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"finbuddy-go-be/database"
	"finbuddy-go-be/finance"
	"finbuddy-go-be/models"
)

// recentActivityLimit caps the dashboard feed.
const recentActivityLimit = 5

// GetSummary returns the dashboard view: totals, net balance, budget
// remaining for the current month, goal progress and recent activity.
func GetSummary(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var incomes []models.Income
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&incomes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch incomes"})
	}
	var expenses []models.Expense
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&expenses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}
	var goals []models.Goal
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	profile, err := loadOrCreateProfile(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	loc := requestLocation(c)
	now := time.Now().In(loc)
	totalIncome := finance.TotalIncome(incomes)
	totalExpenses := finance.TotalExpenses(expenses)
	monthSpent := finance.SpentInMonth(expenses, now.Year(), now.Month(), loc)

	goalViews := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		goalViews = append(goalViews, goalResponse(g))
	}

	return c.JSON(fiber.Map{
		"total_income":     totalIncome,
		"total_expenses":   totalExpenses,
		"net_balance":      totalIncome.Sub(totalExpenses),
		"monthly_budget":   profile.MonthlyBudget,
		"month_spent":      monthSpent,
		"budget_remaining": finance.BudgetRemaining(profile.MonthlyBudget, monthSpent),
		"goals":            goalViews,
		"recent_activity":  finance.RecentActivity(incomes, expenses, recentActivityLimit),
	})
}
