package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finbuddy-go-be/database"
	"finbuddy-go-be/models"
)

// ProfileRequest updates the user's display name and monthly budget.
type ProfileRequest struct {
	Username      string          `json:"username"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// defaultMonthlyBudget seeds new profiles.
var defaultMonthlyBudget = decimal.NewFromInt(200)

func loadOrCreateProfile(c *fiber.Ctx) (models.Profile, error) {
	userID, ok := requireUserID(c)
	if !ok {
		return models.Profile{}, errors.New("unauthorized")
	}

	var profile models.Profile
	err := database.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{
			UserID:        userID,
			Username:      "User",
			MonthlyBudget: defaultMonthlyBudget,
		}
		err = database.DB.Create(&profile).Error
	}
	return profile, err
}

// GetProfile returns the user's profile, creating a default one on first
// access.
func GetProfile(c *fiber.Ctx) error {
	if _, ok := requireUserID(c); !ok {
		return unauthorized(c)
	}

	profile, err := loadOrCreateProfile(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(profile)
}

// UpdateProfile sets the username and monthly budget.
func UpdateProfile(c *fiber.Ctx) error {
	if _, ok := requireUserID(c); !ok {
		return unauthorized(c)
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username must not be empty"})
	}
	if req.MonthlyBudget.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Monthly budget must not be negative"})
	}

	profile, err := loadOrCreateProfile(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	profile.Username = req.Username
	profile.MonthlyBudget = req.MonthlyBudget
	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(profile)
}
