package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/internal/model"
	"primegate_backend/pkg/validation"
)

type PropertyInput struct {
	Title       string             `json:"title" validate:"required"`
	Type        model.PropertyType `json:"type" validate:"required,oneof=villa townhouse apartment"`
	Description string             `json:"description" validate:"required"`
	ImageURL    string             `json:"imageUrl" validate:"required"`
	Partner     string             `json:"partner" validate:"required"`
	Price       *int               `json:"price" validate:"omitempty,min=0"`
	Location    *string            `json:"location"`
	Bedrooms    *int               `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int               `json:"bathrooms" validate:"omitempty,min=0"`
	Area        *int               `json:"area" validate:"omitempty,min=0"`
	Featured    *bool              `json:"featured"`
}

// ListProperties returns every listing.
func ListProperties(c *fiber.Ctx) error {
	properties, err := store.GetProperties()
	if err != nil {
		log.Printf("Could not fetch properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}
	return c.JSON(properties)
}

// ListFeaturedProperties returns the landing-page strip.
func ListFeaturedProperties(c *fiber.Ctx) error {
	properties, err := store.GetFeaturedProperties()
	if err != nil {
		log.Printf("Could not fetch featured properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}
	return c.JSON(properties)
}

// ListPropertiesByType filters by listing type. An unknown type yields
// an empty list, not a 404.
func ListPropertiesByType(c *fiber.Ctx) error {
	properties, err := store.GetPropertiesByType(model.PropertyType(c.Params("type")))
	if err != nil {
		log.Printf("Could not fetch properties by type: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}
	return c.JSON(properties)
}

// ListPropertiesByPartner filters by developer name (string match, not a
// foreign key).
func ListPropertiesByPartner(c *fiber.Ctx) error {
	properties, err := store.GetPropertiesByPartner(c.Params("partner"))
	if err != nil {
		log.Printf("Could not fetch properties by partner: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}
	return c.JSON(properties)
}

func GetProperty(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	property, err := store.GetProperty(id)
	if err != nil {
		log.Printf("Could not fetch property %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch property",
		})
	}
	if property == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Property not found",
		})
	}
	return c.JSON(property)
}

func CreateProperty(c *fiber.Ctx) error {
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(input); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	property := model.Property{
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Partner:     input.Partner,
		Price:       input.Price,
		Location:    input.Location,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
	}
	if input.Featured != nil {
		property.Featured = *input.Featured
	}

	if err := store.CreateProperty(&property); err != nil {
		log.Printf("Could not create property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

func UpdateProperty(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	patch := new(model.PropertyPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if errs := validation.ValidateStruct(patch); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	property, err := store.UpdateProperty(id, *patch)
	if err != nil {
		log.Printf("Could not update property %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update property",
		})
	}
	if property == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Property not found",
		})
	}
	return c.JSON(property)
}

func DeleteProperty(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	deleted, err := store.DeleteProperty(id)
	if err != nil {
		log.Printf("Could not delete property %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete property",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Property not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
