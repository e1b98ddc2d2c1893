package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/pkg/utils/image"
	"primegate_backend/pkg/validation"
)

// UploadImage re-encodes the posted image and pushes it to the image
// CDN, returning the public delivery URL and the CDN id.
func UploadImage(c *fiber.Ctx) error {
	if opts.Images == nil || !opts.Images.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Image service is not configured",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file uploaded",
		})
	}

	buf, _, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	result, err := opts.Images.UploadImage(file.Filename, buf)
	if err != nil {
		log.Printf("Could not upload image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not upload image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// DeleteImage removes an image from the CDN by its id.
func DeleteImage(c *fiber.Ctx) error {
	if opts.Images == nil || !opts.Images.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Image service is not configured",
		})
	}

	imageID := c.Params("id")
	if err := opts.Images.DeleteImage(imageID); err != nil {
		log.Printf("Could not delete image %s: %v", imageID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete image",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type PresignInput struct {
	Name string `json:"name" validate:"required"`
}

// PresignUpload hands the browser a short-lived PUT URL so large files
// go straight to object storage.
func PresignUpload(c *fiber.Ctx) error {
	if opts.Objects == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Object storage is not configured",
		})
	}

	input := new(PresignInput)
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

	presigned, err := opts.Objects.PresignUpload(input.Name)
	if err != nil {
		log.Printf("Could not presign upload: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not presign upload",
		})
	}
	return c.JSON(presigned)
}
