package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mohan160597/blood-donation/config"
	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/middleware"
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
)

type hospitalHandler struct {
	huc domain.HospitalUseCase
}

func NewHospitalHandler(app *fiber.App, uc domain.HospitalUseCase) {
	handler := &hospitalHandler{
		huc: uc,
	}

	app.Post("/register/hospital", handler.registerHospital)

	route := app.Group("/hospital", middleware.AuthRequired, middleware.KindRequired(domain.KindHospital))
	route.Get("/details", handler.getDetails)
}

// registerHospital accepts a multipart form: the profile fields plus a
// supporting document file stored on disk. The hospital starts pending and
// cannot post requests until an administrator approves it.
func (hh *hospitalHandler) registerHospital(c *fiber.Ctx) error {
	hospital := domain.Hospital{
		HospitalName: c.FormValue("hospital_name"),
		StaffName:    c.FormValue("staff_name"),
		StaffID:      c.FormValue("staff_id"),
		Email:        c.FormValue("email"),
		Password:     c.FormValue("password"),
		ContactInfo:  c.FormValue("contact_info"),
		Address:      c.FormValue("address"),
	}

	if _, err := govalidator.ValidateStruct(hospital); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid hospital data",
		})
	}

	file, err := c.FormFile("documents")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Supporting document is required",
		})
	}

	uploadDir := config.GetUploadDir()
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to prepare upload directory",
		})
	}

	filePath := filepath.Join(uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), file.Filename))
	if err := c.SaveFile(file, filePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to save document",
		})
	}
	hospital.Documents = filePath

	ctx := context.Background()
	if err := hh.huc.RegisterHospitalUC(ctx, &hospital); err != nil {
		return respondError(c, err, "Failed to register hospital")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Hospital registered successfully, pending admin approval.",
		"hospital": hospital,
	})
}

func (hh *hospitalHandler) getDetails(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	ctx := context.Background()
	details, err := hh.huc.GetHospitalDetailsUC(ctx, principal.ID)
	if err != nil {
		return respondError(c, err, "Failed to get hospital details")
	}

	return c.Status(fiber.StatusOK).JSON(details)
}
