package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bloodUnitRepository struct {
	db *pgxpool.Pool
}

func NewBloodUnitRepository(database *pgxpool.Pool) domain.BloodUnitRepo {
	return &bloodUnitRepository{
		db: database,
	}
}

func (bu *bloodUnitRepository) CreateBloodUnit(ctx context.Context, unit *domain.BloodUnit) error {
	insertQuery := `
		INSERT INTO blood_units (hospital_id, blood_type, quantity, status, created_at, expiration_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	var id int
	err := bu.db.QueryRow(ctx, insertQuery,
		unit.HospitalID, unit.BloodType, unit.Quantity, unit.Status, unit.CreatedAt, unit.ExpirationDate,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert blood unit: %v", err)
	}

	unit.ID = id

	return nil
}

func (bu *bloodUnitRepository) GetBloodUnitsByHospital(ctx context.Context, hospitalID int) (*[]domain.BloodUnit, error) {
	query := `
		SELECT id, hospital_id, blood_type, quantity, status, created_at, expiration_date
		FROM blood_units
		WHERE hospital_id = $1
		ORDER BY expiration_date ASC;
	`

	rows, err := bu.db.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("could not get blood units: %v", err)
	}
	defer rows.Close()

	var units []domain.BloodUnit
	for rows.Next() {
		var unit domain.BloodUnit
		err := rows.Scan(
			&unit.ID, &unit.HospitalID, &unit.BloodType, &unit.Quantity,
			&unit.Status, &unit.CreatedAt, &unit.ExpirationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan blood unit: %v", err)
		}
		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &units, nil
}

func (bu *bloodUnitRepository) GetBloodUnitByID(ctx context.Context, hospitalID, id int) (*domain.BloodUnit, error) {
	query := `
		SELECT id, hospital_id, blood_type, quantity, status, created_at, expiration_date
		FROM blood_units
		WHERE id = $1 AND hospital_id = $2;
	`

	var unit domain.BloodUnit
	err := bu.db.QueryRow(ctx, query, id, hospitalID).Scan(
		&unit.ID, &unit.HospitalID, &unit.BloodType, &unit.Quantity,
		&unit.Status, &unit.CreatedAt, &unit.ExpirationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: blood unit", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get blood unit: %v", err)
	}

	return &unit, nil
}

func (bu *bloodUnitRepository) GetAvailableUnitsByType(ctx context.Context, hospitalID int, bloodType string) (*[]domain.BloodUnit, error) {
	query := `
		SELECT id, hospital_id, blood_type, quantity, status, created_at, expiration_date
		FROM blood_units
		WHERE hospital_id = $1 AND blood_type = $2 AND status = $3
		ORDER BY expiration_date ASC;
	`

	rows, err := bu.db.Query(ctx, query, hospitalID, bloodType, domain.UnitStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("could not get blood units by type: %v", err)
	}
	defer rows.Close()

	var units []domain.BloodUnit
	for rows.Next() {
		var unit domain.BloodUnit
		err := rows.Scan(
			&unit.ID, &unit.HospitalID, &unit.BloodType, &unit.Quantity,
			&unit.Status, &unit.CreatedAt, &unit.ExpirationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan blood unit: %v", err)
		}
		units = append(units, unit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &units, nil
}

// SummarizeAvailableUnits groups the hospital's available units by blood
// type. Types with no available units are omitted, not zero-filled. The
// low-stock flag is computed by the usecase.
func (bu *bloodUnitRepository) SummarizeAvailableUnits(ctx context.Context, hospitalID int) (*[]domain.BloodTypeSummary, error) {
	query := `
		SELECT blood_type, SUM(quantity) AS total_quantity
		FROM blood_units
		WHERE hospital_id = $1 AND status = $2
		GROUP BY blood_type
		ORDER BY blood_type;
	`

	rows, err := bu.db.Query(ctx, query, hospitalID, domain.UnitStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("could not summarize blood units: %v", err)
	}
	defer rows.Close()

	var summaries []domain.BloodTypeSummary
	for rows.Next() {
		var s domain.BloodTypeSummary
		if err := rows.Scan(&s.BloodType, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("could not scan summary row: %v", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &summaries, nil
}

func (bu *bloodUnitRepository) UpdateBloodUnit(ctx context.Context, unit *domain.BloodUnit) error {
	query := `
		UPDATE blood_units
		SET quantity = $1, status = $2
		WHERE id = $3 AND hospital_id = $4;
	`

	tag, err := bu.db.Exec(ctx, query, unit.Quantity, unit.Status, unit.ID, unit.HospitalID)
	if err != nil {
		return fmt.Errorf("could not update blood unit: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood unit", domain.ErrNotFound)
	}

	return nil
}

func (bu *bloodUnitRepository) DeleteBloodUnit(ctx context.Context, hospitalID, id int) error {
	query := `
		DELETE FROM blood_units
		WHERE id = $1 AND hospital_id = $2;
	`

	tag, err := bu.db.Exec(ctx, query, id, hospitalID)
	if err != nil {
		return fmt.Errorf("could not delete blood unit: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood unit", domain.ErrNotFound)
	}

	return nil
}
