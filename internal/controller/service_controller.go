package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func ListServices(c *fiber.Ctx) error {
	services, err := store.GetServices()
	if err != nil {
		log.Printf("Could not fetch services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch services",
		})
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid service ID",
		})
	}

	service, err := store.GetService(id)
	if err != nil {
		log.Printf("Could not fetch service %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch service",
		})
	}
	if service == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Service not found",
		})
	}
	return c.JSON(service)
}
