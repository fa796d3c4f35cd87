package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"golang.org/x/crypto/bcrypt"
)

type hospitalUC struct {
	hospitalRepo domain.HospitalRepo
	TimeOut      time.Duration
}

func NewHospitalUseCase(repo domain.HospitalRepo, timeOut time.Duration) domain.HospitalUseCase {
	return &hospitalUC{
		hospitalRepo: repo,
		TimeOut:      timeOut,
	}
}

// RegisterHospitalUC creates the hospital in the pending state. Approval is
// flipped out-of-band by an administrative actor.
func (hUC *hospitalUC) RegisterHospitalUC(ctx context.Context, hospital *domain.Hospital) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(hospital.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	hospital.Password = string(hashed)

	err = hUC.hospitalRepo.CreateHospital(ctx, hospital)
	if err != nil {
		return err
	}

	hospital.Password = ""
	return nil
}

func (hUC *hospitalUC) GetHospitalDetailsUC(ctx context.Context, id int) (*domain.SafeHospitalData, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	hospital, err := hUC.hospitalRepo.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.SafeHospitalData{
		ID:              hospital.ID,
		HospitalName:    hospital.HospitalName,
		StaffName:       hospital.StaffName,
		StaffID:         hospital.StaffID,
		Email:           hospital.Email,
		ContactInfo:     hospital.ContactInfo,
		Address:         hospital.Address,
		Documents:       hospital.Documents,
		ApprovalStatus:  hospital.ApprovalStatus,
		RejectionReason: hospital.RejectionReason,
		DateRegistered:  hospital.DateRegistered,
	}, nil
}
