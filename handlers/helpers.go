package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requireUserID pulls the owner id from the X-User-ID header.
// TODO: replace with auth middleware once sessions land.
func requireUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Get("X-User-ID"))
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID required in X-User-ID header"})
}
