package delivery

import (
	"errors"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/gofiber/fiber/v2"
)

// statusFromError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrHospitalNotApproved):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error, message string) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"message": message,
	})
}
