package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studioapi/internal/service"
)

// SubmitContact accepts the form-encoded contact form.
// Field names follow the public form contract: name, email, phone,
// country-code, message, date, time.
//
// @Summary Submit the contact form
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param message formData string true "Message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ContactInput{
			Name:          c.FormValue("name"),
			Email:         c.FormValue("email"),
			Phone:         c.FormValue("phone"),
			CountryCode:   c.FormValue("country-code"),
			Message:       c.FormValue("message"),
			PreferredDate: c.FormValue("date"),
			PreferredTime: c.FormValue("time"),
		}

		if _, err := svc.Submit(c.UserContext(), in); err != nil {
			if errors.Is(err, service.ErrContactFieldsRequired) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "error submitting form data")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Form submitted successfully!"})
	}
}
