package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"golang.org/x/crypto/bcrypt"
)

type deliveryStaffUC struct {
	staffRepo domain.DeliveryStaffRepo
	TimeOut   time.Duration
}

func NewDeliveryStaffUseCase(repo domain.DeliveryStaffRepo, timeOut time.Duration) domain.DeliveryStaffUseCase {
	return &deliveryStaffUC{
		staffRepo: repo,
		TimeOut:   timeOut,
	}
}

func (dsUC *deliveryStaffUC) RegisterDeliveryStaffUC(ctx context.Context, staff *domain.DeliveryStaff) error {
	ctx, cancel := context.WithTimeout(ctx, dsUC.TimeOut)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	staff.Password = string(hashed)

	err = dsUC.staffRepo.CreateDeliveryStaff(ctx, staff)
	if err != nil {
		return err
	}

	staff.Password = ""
	return nil
}

func (dsUC *deliveryStaffUC) GetDeliveryStaffByIDUC(ctx context.Context, id int) (*domain.DeliveryStaff, error) {
	ctx, cancel := context.WithTimeout(ctx, dsUC.TimeOut)
	defer cancel()

	staff, err := dsUC.staffRepo.GetDeliveryStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staff.Password = ""
	return staff, nil
}
