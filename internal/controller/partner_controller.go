package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func ListPartners(c *fiber.Ctx) error {
	partners, err := store.GetPartners()
	if err != nil {
		log.Printf("Could not fetch partners: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch partners",
		})
	}
	return c.JSON(partners)
}
