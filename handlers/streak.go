package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"finbuddy-go-be/database"
	"finbuddy-go-be/finance"
	"finbuddy-go-be/models"
)

// requestLocation resolves the viewer's timezone from the tz query param.
// Falls back to UTC so one computation never mixes clocks.
func requestLocation(c *fiber.Ctx) *time.Location {
	if tz := c.Query("tz"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// GetStreak returns the hustle streak and the 7-day activity mask. Only
// gig income counts as qualifying activity.
func GetStreak(c *fiber.Ctx) error {
	userID, ok := requireUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var incomes []models.Income
	if err := database.DB.Where("user_id = ? AND category = ?", userID, finance.StreakCategory).
		Find(&incomes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch incomes"})
	}

	times := make([]time.Time, 0, len(incomes))
	for _, r := range incomes {
		times = append(times, r.CreatedAt)
	}

	// One clock read for streak and mask, to keep the day bucketing
	// consistent across the whole computation.
	now := time.Now().In(requestLocation(c))

	return c.JSON(fiber.Map{
		"streak": finance.CurrentStreak(now, times),
		"week":   finance.WeekMask(now, times),
	})
}
