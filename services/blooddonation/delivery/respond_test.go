package delivery

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/Mohan160597/blood-donation/services/blooddonation/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: donor", domain.ErrNotFound), fiber.StatusNotFound},
		{"forbidden", domain.ErrForbidden, fiber.StatusForbidden},
		{"hospital not approved", domain.ErrHospitalNotApproved, fiber.StatusForbidden},
		{"duplicate", domain.ErrDuplicate, fiber.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, fiber.StatusBadRequest},
		{"validation", fmt.Errorf("%w: invalid blood type C+", domain.ErrValidation), fiber.StatusBadRequest},
		{"unknown", fmt.Errorf("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFromError(tc.err))
		})
	}
}

type stubHospitalRepo struct {
	hospital *domain.Hospital
}

func (s *stubHospitalRepo) CreateHospital(ctx context.Context, hospital *domain.Hospital) error {
	return nil
}

func (s *stubHospitalRepo) GetHospitalByID(ctx context.Context, id int) (*domain.Hospital, error) {
	return s.hospital, nil
}

func (s *stubHospitalRepo) GetHospitalByEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	return s.hospital, nil
}

// A usecase validation failure must surface as a 400, never a 500.
func TestBloodRequestValidationFailureMapsToBadRequest(t *testing.T) {
	hospitalRepo := &stubHospitalRepo{hospital: &domain.Hospital{ID: 1, ApprovalStatus: domain.ApprovalApproved}}
	uc := usecase.NewBloodRequestUseCase(nil, hospitalRepo, nil, nil, logrus.New(), 2*time.Second)

	req := domain.BloodRequest{BloodType: "C+", Quantity: 2, PriorityLevel: domain.PriorityNormal}
	err := uc.CreateBloodRequestUC(context.Background(), 1, &req)
	require.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, fiber.StatusBadRequest, statusFromError(err))
}
