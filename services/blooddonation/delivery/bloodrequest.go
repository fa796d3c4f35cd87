package delivery

import (
	"context"
	"strconv"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type bloodRequestHandler struct {
	bruc domain.BloodRequestUseCase
}

func NewBloodRequestHandler(app *fiber.App, uc domain.BloodRequestUseCase) {
	handler := &bloodRequestHandler{
		bruc: uc,
	}

	route := app.Group("/blood-requests", middleware.AuthRequired, middleware.KindRequired(domain.KindHospital))
	route.Post("/", handler.createBloodRequest)
	route.Get("/", handler.getAllBloodRequests)
	route.Get("/:id", handler.getBloodRequestByID)
	route.Put("/:id", handler.updateBloodRequest)
	route.Delete("/:id", handler.deleteBloodRequest)
}

func (brh *bloodRequestHandler) createBloodRequest(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var req domain.BloodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid blood request data",
		})
	}

	if req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "quantity must be greater than 0",
			"message": "Invalid blood request data",
		})
	}

	ctx := context.Background()
	if err := brh.bruc.CreateBloodRequestUC(ctx, principal.ID, &req); err != nil {
		return respondError(c, err, "Failed to create blood request")
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

func (brh *bloodRequestHandler) getAllBloodRequests(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	requests, err := brh.bruc.GetAllBloodRequestsUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get blood requests")
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

func (brh *bloodRequestHandler) getBloodRequestByID(c *fiber.Ctx) error {
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
			"error":   "invalid request ID",
			"message": "Invalid request ID",
		})
	}

	ctx := context.Background()
	req, err := brh.bruc.GetBloodRequestByIDUC(ctx, principal.ID, id)
	if err != nil {
		return respondError(c, err, "Failed to get blood request")
	}

	return c.Status(fiber.StatusOK).JSON(req)
}

func (brh *bloodRequestHandler) updateBloodRequest(c *fiber.Ctx) error {
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
			"error":   "invalid request ID",
			"message": "Invalid request ID",
		})
	}

	var payload domain.BloodRequestUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	ctx := context.Background()
	req, err := brh.bruc.UpdateBloodRequestUC(ctx, principal.ID, id, &payload)
	if err != nil {
		return respondError(c, err, "Failed to update blood request")
	}

	return c.Status(fiber.StatusOK).JSON(req)
}

func (brh *bloodRequestHandler) deleteBloodRequest(c *fiber.Ctx) error {
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
			"error":   "invalid request ID",
			"message": "Invalid request ID",
		})
	}

	ctx := context.Background()
	if err := brh.bruc.DeleteBloodRequestUC(ctx, principal.ID, id); err != nil {
		return respondError(c, err, "Failed to delete blood request")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Blood request deleted successfully",
	})
}
