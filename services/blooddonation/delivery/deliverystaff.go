package delivery

import (
	"context"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type deliveryStaffHandler struct {
	dsuc domain.DeliveryStaffUseCase
}

func NewDeliveryStaffHandler(app *fiber.App, uc domain.DeliveryStaffUseCase) {
	handler := &deliveryStaffHandler{
		dsuc: uc,
	}

	app.Post("/register/deliverystaff", handler.registerDeliveryStaff)

	route := app.Group("/deliverystaff", middleware.AuthRequired, middleware.KindRequired(domain.KindDeliveryStaff))
	route.Get("/", handler.getProfile)
}

func (dsh *deliveryStaffHandler) registerDeliveryStaff(c *fiber.Ctx) error {
	var staff domain.DeliveryStaff
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid delivery staff data",
		})
	}

	ctx := context.Background()
	if err := dsh.dsuc.RegisterDeliveryStaffUC(ctx, &staff); err != nil {
		return respondError(c, err, "Failed to register delivery staff")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Delivery staff registered successfully",
		"staff":   staff,
	})
}

func (dsh *deliveryStaffHandler) getProfile(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	staff, err := dsh.dsuc.GetDeliveryStaffByIDUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get delivery staff profile")
	}

	return c.Status(fiber.StatusOK).JSON(staff)
}
