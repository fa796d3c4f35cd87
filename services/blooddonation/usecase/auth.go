package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"golang.org/x/crypto/bcrypt"
)

type authUC struct {
	donorRepo    domain.DonorRepo
	staffRepo    domain.DeliveryStaffRepo
	hospitalRepo domain.HospitalRepo
	TimeOut      time.Duration
}

func NewAuthUseCase(donorRepo domain.DonorRepo, staffRepo domain.DeliveryStaffRepo, hospitalRepo domain.HospitalRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		donorRepo:    donorRepo,
		staffRepo:    staffRepo,
		hospitalRepo: hospitalRepo,
		TimeOut:      timeOut,
	}
}

// Authenticate looks the email up within the requested kind's table only.
// Any failure collapses into ErrInvalidCredentials so the caller can never
// tell a missing account from a wrong password.
func (a *authUC) Authenticate(ctx context.Context, kind string, req *domain.LoginRequest) (*domain.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, a.TimeOut)
	defer cancel()

	var id int
	var hash string

	switch kind {
	case domain.KindDonor:
		donor, err := a.donorRepo.GetDonorByEmail(ctx, req.Email)
		if err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		id, hash = donor.ID, donor.Password
	case domain.KindDeliveryStaff:
		staff, err := a.staffRepo.GetDeliveryStaffByEmail(ctx, req.Email)
		if err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		id, hash = staff.ID, staff.Password
	case domain.KindHospital:
		hospital, err := a.hospitalRepo.GetHospitalByEmail(ctx, req.Email)
		if err != nil {
			return nil, domain.ErrInvalidCredentials
		}
		id, hash = hospital.ID, hospital.Password
	default:
		return nil, fmt.Errorf("unknown principal kind: %s", kind)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Principal{ID: id, Kind: kind}, nil
}
