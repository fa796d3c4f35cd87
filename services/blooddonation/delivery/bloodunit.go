package delivery

import (
	"context"
	"strconv"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type bloodUnitHandler struct {
	buuc domain.BloodUnitUseCase
}

func NewBloodUnitHandler(app *fiber.App, uc domain.BloodUnitUseCase) {
	handler := &bloodUnitHandler{
		buuc: uc,
	}

	route := app.Group("/blood-units", middleware.AuthRequired, middleware.KindRequired(domain.KindHospital))
	route.Post("/", handler.createBloodUnit)
	route.Get("/", handler.getAllBloodUnits)
	route.Get("/summary", handler.getSummary)
	route.Get("/type/:bloodType", handler.getByType)
	route.Get("/:id", handler.getBloodUnitByID)
	route.Put("/:id", handler.updateBloodUnit)
	route.Delete("/:id", handler.deleteBloodUnit)
}

func (buh *bloodUnitHandler) createBloodUnit(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var unit domain.BloodUnit
	if err := c.BodyParser(&unit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(unit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid blood unit data",
		})
	}

	if unit.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "quantity must be greater than 0",
			"message": "Invalid blood unit data",
		})
	}

	ctx := context.Background()
	if err := buh.buuc.CreateBloodUnitUC(ctx, principal.ID, &unit); err != nil {
		return respondError(c, err, "Failed to create blood unit")
	}

	return c.Status(fiber.StatusCreated).JSON(unit)
}

func (buh *bloodUnitHandler) getAllBloodUnits(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	units, err := buh.buuc.GetAllBloodUnitsUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get blood units")
	}

	return c.Status(fiber.StatusOK).JSON(units)
}

func (buh *bloodUnitHandler) getBloodUnitByID(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid unit ID",
			"message": "Invalid unit ID",
		})
	}

	ctx := context.Background()
	unit, err := buh.buuc.GetBloodUnitByIDUC(ctx, principal.ID, id)
	if err != nil {
		return respondError(c, err, "Failed to get blood unit")
	}

	return c.Status(fiber.StatusOK).JSON(unit)
}

func (buh *bloodUnitHandler) getSummary(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	summary, err := buh.buuc.GetBloodUnitSummaryUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get blood unit summary")
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (buh *bloodUnitHandler) getByType(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	bloodType := c.Params("bloodType")

	ctx := context.Background()
	details, err := buh.buuc.GetBloodUnitsByTypeUC(ctx, principal.ID, bloodType)
	if err != nil {
		return respondError(c, err, "Failed to get blood units by type")
	}

	return c.Status(fiber.StatusOK).JSON(details)
}

func (buh *bloodUnitHandler) updateBloodUnit(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid unit ID",
			"message": "Invalid unit ID",
		})
	}

	var payload domain.BloodUnitUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	ctx := context.Background()
	unit, err := buh.buuc.UpdateBloodUnitUC(ctx, principal.ID, id, &payload)
	if err != nil {
		return respondError(c, err, "Failed to update blood unit")
	}

	return c.Status(fiber.StatusOK).JSON(unit)
}

func (buh *bloodUnitHandler) deleteBloodUnit(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "invalid unit ID",
			"message": "Invalid unit ID",
		})
	}

	ctx := context.Background()
	if err := buh.buuc.DeleteBloodUnitUC(ctx, principal.ID, id); err != nil {
		return respondError(c, err, "Failed to delete blood unit")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Blood unit deleted successfully",
	})
}
