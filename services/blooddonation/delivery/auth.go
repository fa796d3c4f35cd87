package delivery

import (
	"context"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, uc domain.AuthUseCase) {
	handler := &authHandler{
		auc: uc,
	}

	route := app.Group("/login")
	route.Post("/donor", handler.login(domain.KindDonor))
	route.Post("/deliverystaff", handler.login(domain.KindDeliveryStaff))
	route.Post("/hospital", handler.login(domain.KindHospital))
	route.Post("/refresh", handler.refresh)
}

func (ah *authHandler) login(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.LoginRequest
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
				"message": "Invalid login data",
			})
		}

		ctx := context.Background()
		principal, err := ah.auc.Authenticate(ctx, kind, &req)
		if err != nil {
			// Never reveal whether the email or the password was wrong.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": domain.ErrInvalidCredentials.Error(),
			})
		}

		access, refresh, err := middleware.GenerateTokenPair(principal.ID, principal.Kind)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to generate token",
			})
		}

		return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
			Success: true,
			Access:  access,
			Refresh: refresh,
		})
	}
}

func (ah *authHandler) refresh(c *fiber.Ctx) error {
	var req domain.RefreshRequest
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
			"message": "Invalid refresh data",
		})
	}

	principal, err := middleware.VerifyRefreshToken(req.Refresh)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	access, refresh, err := middleware.GenerateTokenPair(principal.ID, principal.Kind)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(domain.LoginResponse{
		Success: true,
		Access:  access,
		Refresh: refresh,
	})
}
