package delivery

import (
	"context"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type donorHandler struct {
	duc domain.DonorUseCase
}

func NewDonorHandler(app *fiber.App, uc domain.DonorUseCase) {
	handler := &donorHandler{
		duc: uc,
	}

	app.Post("/register/donor", handler.registerDonor)

	route := app.Group("/donor", middleware.AuthRequired, middleware.KindRequired(domain.KindDonor))
	route.Get("/", handler.getProfile)
	route.Put("/", handler.updateProfile)
	route.Delete("/", handler.deactivate)
}

type donorRegisterPayload struct {
	Firstname   string `json:"firstname" valid:"required~Firstname is required"`
	Lastname    string `json:"lastname" valid:"required~Lastname is required"`
	DOB         string `json:"dob" valid:"required~Date of birth is required"`
	Gender      string `json:"gender" valid:"required~Gender is required,in(Male|Female|Other)~Invalid gender"`
	Email       string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password    string `json:"password" valid:"required~Password is required"`
	BloodType   string `json:"blood_type" valid:"required~Blood type is required"`
	PhoneNumber string `json:"phone_number" valid:"required~Phone number is required"`
}

func (dh *donorHandler) registerDonor(c *fiber.Ctx) error {
	var payload donorRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid donor data",
		})
	}

	dob, err := time.Parse("2006-01-02", payload.DOB)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid date of birth, expected YYYY-MM-DD",
			"message": "Invalid donor data",
		})
	}

	donor := domain.Donor{
		Firstname:   payload.Firstname,
		Lastname:    payload.Lastname,
		DOB:         dob,
		Gender:      payload.Gender,
		Email:       payload.Email,
		Password:    payload.Password,
		BloodType:   payload.BloodType,
		PhoneNumber: payload.PhoneNumber,
	}

	ctx := context.Background()
	if err := dh.duc.RegisterDonorUC(ctx, &donor); err != nil {
		return respondError(c, err, "Failed to register donor")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Donor registered successfully",
		"donor":   donor,
	})
}

func (dh *donorHandler) getProfile(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	donor, err := dh.duc.GetDonorByIDUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get donor profile")
	}

	return c.Status(fiber.StatusOK).JSON(donor)
}

func (dh *donorHandler) updateProfile(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var payload domain.DonorUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	ctx := context.Background()
	donor, err := dh.duc.UpdateDonorUC(ctx, principal.ID, &payload)
	if err != nil {
		return respondError(c, err, "Failed to update donor profile")
	}

	return c.Status(fiber.StatusOK).JSON(donor)
}

func (dh *donorHandler) deactivate(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	if err := dh.duc.DeactivateDonorUC(ctx, principal.ID); err != nil {
		return respondError(c, err, "Failed to deactivate donor")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Donor deactivated successfully",
	})
}
