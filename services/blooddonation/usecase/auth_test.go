package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newAuthUC(donorRepo *mockDonorRepo, staffRepo *mockDeliveryStaffRepo, hospitalRepo *mockHospitalRepo) domain.AuthUseCase {
	return NewAuthUseCase(donorRepo, staffRepo, hospitalRepo, 2*time.Second)
}

func TestAuthenticateDonorSuccess(t *testing.T) {
	donorRepo := new(mockDonorRepo)
	staffRepo := new(mockDeliveryStaffRepo)
	hospitalRepo := new(mockHospitalRepo)

	donor := &domain.Donor{ID: 42, Email: "donor@example.com", Password: hashFor(t, "s3cret")}
	donorRepo.On("GetDonorByEmail", mock.Anything, "donor@example.com").Return(donor, nil)

	uc := newAuthUC(donorRepo, staffRepo, hospitalRepo)

	principal, err := uc.Authenticate(context.Background(), domain.KindDonor, &domain.LoginRequest{
		Email:    "donor@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, principal.ID)
	assert.Equal(t, domain.KindDonor, principal.Kind)
}

func TestAuthenticateWrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	donorRepo := new(mockDonorRepo)
	staffRepo := new(mockDeliveryStaffRepo)
	hospitalRepo := new(mockHospitalRepo)

	donor := &domain.Donor{ID: 42, Email: "donor@example.com", Password: hashFor(t, "s3cret")}
	donorRepo.On("GetDonorByEmail", mock.Anything, "donor@example.com").Return(donor, nil)
	donorRepo.On("GetDonorByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	uc := newAuthUC(donorRepo, staffRepo, hospitalRepo)

	_, errWrongPassword := uc.Authenticate(context.Background(), domain.KindDonor, &domain.LoginRequest{
		Email:    "donor@example.com",
		Password: "wrong",
	})
	_, errUnknownEmail := uc.Authenticate(context.Background(), domain.KindDonor, &domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestAuthenticateIsKindScoped(t *testing.T) {
	donorRepo := new(mockDonorRepo)
	staffRepo := new(mockDeliveryStaffRepo)
	hospitalRepo := new(mockHospitalRepo)

	// The email exists as a donor but the caller logs in as a hospital:
	// only the hospital table is consulted.
	hospitalRepo.On("GetHospitalByEmail", mock.Anything, "donor@example.com").Return(nil, domain.ErrNotFound)

	uc := newAuthUC(donorRepo, staffRepo, hospitalRepo)

	_, err := uc.Authenticate(context.Background(), domain.KindHospital, &domain.LoginRequest{
		Email:    "donor@example.com",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	donorRepo.AssertNotCalled(t, "GetDonorByEmail", mock.Anything, mock.Anything)
}

func TestAuthenticateUnknownKind(t *testing.T) {
	uc := newAuthUC(new(mockDonorRepo), new(mockDeliveryStaffRepo), new(mockHospitalRepo))

	_, err := uc.Authenticate(context.Background(), "admin", &domain.LoginRequest{
		Email:    "x@example.com",
		Password: "x",
	})
	require.Error(t, err)
}

func TestAuthenticateHospitalSuccess(t *testing.T) {
	donorRepo := new(mockDonorRepo)
	staffRepo := new(mockDeliveryStaffRepo)
	hospitalRepo := new(mockHospitalRepo)

	hospital := &domain.Hospital{ID: 7, Email: "ops@hospital.example", Password: hashFor(t, "hunter2")}
	hospitalRepo.On("GetHospitalByEmail", mock.Anything, "ops@hospital.example").Return(hospital, nil)

	uc := newAuthUC(donorRepo, staffRepo, hospitalRepo)

	principal, err := uc.Authenticate(context.Background(), domain.KindHospital, &domain.LoginRequest{
		Email:    "ops@hospital.example",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindHospital, principal.Kind)
	assert.Equal(t, 7, principal.ID)
}
