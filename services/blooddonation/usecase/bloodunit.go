package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
)

type bloodUnitUC struct {
	unitRepo     domain.BloodUnitRepo
	hospitalRepo domain.HospitalRepo
	TimeOut      time.Duration
}

func NewBloodUnitUseCase(unitRepo domain.BloodUnitRepo, hospitalRepo domain.HospitalRepo, timeOut time.Duration) domain.BloodUnitUseCase {
	return &bloodUnitUC{
		unitRepo:     unitRepo,
		hospitalRepo: hospitalRepo,
		TimeOut:      timeOut,
	}
}

// DaysUntilExpiration is the whole-day distance from today to the unit's
// expiration date. Negative means the unit already expired; the stored
// status is never flipped on read.
func DaysUntilExpiration(expiration, now time.Time) int {
	ey, em, ed := expiration.Date()
	ny, nm, nd := now.Date()
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(n).Hours() / 24)
}

func (buUC *bloodUnitUC) requireApprovedHospital(ctx context.Context, hospitalID int) error {
	hospital, err := buUC.hospitalRepo.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital.ApprovalStatus != domain.ApprovalApproved {
		return domain.ErrHospitalNotApproved
	}
	return nil
}

// CreateBloodUnitUC stores a unit for the owning hospital. The expiration
// date is always assigned server-side as creation date plus the shelf life;
// a client-supplied value is ignored.
func (buUC *bloodUnitUC) CreateBloodUnitUC(ctx context.Context, hospitalID int, unit *domain.BloodUnit) error {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	if err := buUC.requireApprovedHospital(ctx, hospitalID); err != nil {
		return err
	}

	if unit.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
	}
	if !domain.IsValidBloodType(unit.BloodType) {
		return fmt.Errorf("%w: invalid blood type %s", domain.ErrValidation, unit.BloodType)
	}

	now := time.Now()
	unit.HospitalID = hospitalID
	unit.Status = domain.UnitStatusAvailable
	unit.CreatedAt = now
	unit.ExpirationDate = now.Add(domain.ShelfLife)

	err := buUC.unitRepo.CreateBloodUnit(ctx, unit)
	if err != nil {
		return err
	}
	return nil
}

func (buUC *bloodUnitUC) GetAllBloodUnitsUC(ctx context.Context, hospitalID int) (*[]domain.BloodUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	units, err := buUC.unitRepo.GetBloodUnitsByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (buUC *bloodUnitUC) GetBloodUnitByIDUC(ctx context.Context, hospitalID, id int) (*domain.BloodUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	unit, err := buUC.unitRepo.GetBloodUnitByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (buUC *bloodUnitUC) GetBloodUnitSummaryUC(ctx context.Context, hospitalID int) (*[]domain.BloodTypeSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	summaries, err := buUC.unitRepo.SummarizeAvailableUnits(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	for i := range *summaries {
		(*summaries)[i].LowStockAlert = (*summaries)[i].TotalQuantity < domain.LowStockThreshold
	}

	return summaries, nil
}

func (buUC *bloodUnitUC) GetBloodUnitsByTypeUC(ctx context.Context, hospitalID int, bloodType string) (*[]domain.BloodUnitDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	if !domain.IsValidBloodType(bloodType) {
		return nil, fmt.Errorf("%w: invalid blood type %s", domain.ErrValidation, bloodType)
	}

	units, err := buUC.unitRepo.GetAvailableUnitsByType(ctx, hospitalID, bloodType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	details := make([]domain.BloodUnitDetail, 0, len(*units))
	for _, unit := range *units {
		details = append(details, domain.BloodUnitDetail{
			BloodUnit:    unit,
			DaysToExpire: DaysUntilExpiration(unit.ExpirationDate, now),
		})
	}

	return &details, nil
}

func (buUC *bloodUnitUC) UpdateBloodUnitUC(ctx context.Context, hospitalID, id int, payload *domain.BloodUnitUpdatePayload) (*domain.BloodUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	if err := buUC.requireApprovedHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	unit, err := buUC.unitRepo.GetBloodUnitByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}

	if payload.Quantity != nil {
		if *payload.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
		}
		unit.Quantity = *payload.Quantity
	}
	if payload.Status != nil {
		switch *payload.Status {
		case domain.UnitStatusAvailable, domain.UnitStatusUsed, domain.UnitStatusExpired:
		default:
			return nil, fmt.Errorf("%w: invalid status %s", domain.ErrValidation, *payload.Status)
		}
		unit.Status = *payload.Status
	}

	if err := buUC.unitRepo.UpdateBloodUnit(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (buUC *bloodUnitUC) DeleteBloodUnitUC(ctx context.Context, hospitalID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, buUC.TimeOut)
	defer cancel()

	if err := buUC.requireApprovedHospital(ctx, hospitalID); err != nil {
		return err
	}

	err := buUC.unitRepo.DeleteBloodUnit(ctx, hospitalID, id)
	if err != nil {
		return err
	}
	return nil
}
