package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"golang.org/x/crypto/bcrypt"
)

type donorUC struct {
	donorRepo domain.DonorRepo
	TimeOut   time.Duration
}

func NewDonorUseCase(repo domain.DonorRepo, timeOut time.Duration) domain.DonorUseCase {
	return &donorUC{
		donorRepo: repo,
		TimeOut:   timeOut,
	}
}

func (dUC *donorUC) RegisterDonorUC(ctx context.Context, donor *domain.Donor) error {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	if !domain.IsValidBloodType(donor.BloodType) {
		return fmt.Errorf("%w: invalid blood type %s", domain.ErrValidation, donor.BloodType)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(donor.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	donor.Password = string(hashed)

	err = dUC.donorRepo.CreateDonor(ctx, donor)
	if err != nil {
		return err
	}

	donor.Password = ""
	return nil
}

func (dUC *donorUC) GetDonorByIDUC(ctx context.Context, id int) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donor, err := dUC.donorRepo.GetDonorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	donor.Password = ""
	return donor, nil
}

func (dUC *donorUC) UpdateDonorUC(ctx context.Context, id int, payload *domain.DonorUpdatePayload) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donor, err := dUC.donorRepo.UpdateDonor(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	donor.Password = ""
	return donor, nil
}

func (dUC *donorUC) DeactivateDonorUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	err := dUC.donorRepo.DeactivateDonor(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
