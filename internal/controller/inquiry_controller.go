package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/internal/model"
	"primegate_backend/pkg/email"
	"primegate_backend/pkg/validation"
)

type InquiryInput struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	Service   *string `json:"service"`
	Message   string  `json:"message" validate:"required"`
}

func ListInquiries(c *fiber.Ctx) error {
	inquiries, err := store.GetInquiries()
	if err != nil {
		log.Printf("Could not fetch inquiries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch inquiries",
		})
	}
	return c.JSON(inquiries)
}

// CreateInquiry stores a contact-form submission and forwards it to the
// brokerage inbox. A failed notification is logged, never surfaced: the
// row is already durable.
func CreateInquiry(c *fiber.Ctx) error {
	input := new(InquiryInput)
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

	inquiry := model.Inquiry{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Message:   input.Message,
	}

	if err := store.CreateInquiry(&inquiry); err != nil {
		log.Printf("Could not create inquiry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create inquiry",
		})
	}

	if email.GlobalEmailService != nil {
		data := email.InquiryNotificationData{
			FirstName: inquiry.FirstName,
			LastName:  inquiry.LastName,
			Email:     inquiry.Email,
			Message:   inquiry.Message,
		}
		if inquiry.Phone != nil {
			data.Phone = *inquiry.Phone
		}
		if inquiry.Service != nil {
			data.Service = *inquiry.Service
		}
		if err := email.GlobalEmailService.SendInquiryNotification(opts.InquiryInbox, data); err != nil {
			log.Printf("Could not send inquiry notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}
