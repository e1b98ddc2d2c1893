package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/internal/model"
)

// GetAuthUser returns the synced record for the authenticated user. The
// middleware has already upserted it from the provider claims.
func GetAuthUser(c *fiber.Ctx) error {
	user := c.Locals("user").(*model.User)
	return c.JSON(user)
}

// Logout drops the session row. The token itself stays valid until it
// expires; the provider owns its lifecycle.
func Logout(c *fiber.Ctx) error {
	sid := c.Locals("sid").(string)
	if err := store.DeleteSession(sid); err != nil {
		log.Printf("Could not delete session %s: %v", sid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not log out",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
