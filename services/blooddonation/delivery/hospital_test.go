package delivery

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type stubHospitalUseCase struct {
	registered *domain.Hospital
}

func (s *stubHospitalUseCase) RegisterHospitalUC(ctx context.Context, hospital *domain.Hospital) error {
	s.registered = hospital
	return nil
}

func (s *stubHospitalUseCase) GetHospitalDetailsUC(ctx context.Context, id int) (*domain.SafeHospitalData, error) {
	return nil, domain.ErrNotFound
}

func hospitalRegistrationForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"hospital_name": "City General",
		"staff_name":    "Priya",
		"staff_id":      "CG-100",
		"email":         "ops@citygeneral.com",
		"password":      "hunter2",
		"contact_info":  "555-0100",
		"address":       "12 Main St",
	}
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	part, err := writer.CreateFormFile("documents", "license.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("license contents"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestRegisterHospitalSavesDocument(t *testing.T) {
	uploadDir := filepath.Join(t.TempDir(), "docs")
	t.Setenv("UPLOAD_DIR", uploadDir)

	app := fiber.New()
	uc := &stubHospitalUseCase{}
	NewHospitalHandler(app, uc)

	body, contentType := hospitalRegistrationForm(t)
	req, err := http.NewRequest(http.MethodPost, "/register/hospital", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, uc.registered)
	require.NotEmpty(t, uc.registered.Documents)
	_, err = os.Stat(uc.registered.Documents)
	require.NoError(t, err)
}

func TestRegisterHospitalUploadDirFailureIsSurfaced(t *testing.T) {
	// A regular file where the upload directory should be makes MkdirAll
	// fail; the handler must report that instead of a misleading save error.
	base := t.TempDir()
	blocker := filepath.Join(base, "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	t.Setenv("UPLOAD_DIR", filepath.Join(blocker, "nested"))

	app := fiber.New()
	uc := &stubHospitalUseCase{}
	NewHospitalHandler(app, uc)

	body, contentType := hospitalRegistrationForm(t)
	req, err := http.NewRequest(http.MethodPost, "/register/hospital", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Nil(t, uc.registered)
}
