package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type deliveryStaffRepository struct {
	db *pgxpool.Pool
}

func NewDeliveryStaffRepository(database *pgxpool.Pool) domain.DeliveryStaffRepo {
	return &deliveryStaffRepository{
		db: database,
	}
}

func (dsr *deliveryStaffRepository) CreateDeliveryStaff(ctx context.Context, staff *domain.DeliveryStaff) error {
	insertQuery := `
		INSERT INTO delivery_staff (firstname, lastname, email, password, gender, license_number, vehicle_type, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := dsr.db.QueryRow(ctx, insertQuery,
		staff.Firstname, staff.Lastname, staff.Email, staff.Password,
		staff.Gender, staff.LicenseNumber, staff.VehicleType, true, now,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email or license number already registered", domain.ErrDuplicate)
		}
		return fmt.Errorf("could not insert delivery staff: %v", err)
	}

	staff.ID = id
	staff.IsActive = true
	staff.DateJoined = now

	return nil
}

func (dsr *deliveryStaffRepository) GetDeliveryStaffByID(ctx context.Context, id int) (*domain.DeliveryStaff, error) {
	query := `
		SELECT id, firstname, lastname, email, password, gender, license_number, vehicle_type, is_active, date_joined
		FROM delivery_staff
		WHERE id = $1;
	`

	var staff domain.DeliveryStaff
	err := dsr.db.QueryRow(ctx, query, id).Scan(
		&staff.ID, &staff.Firstname, &staff.Lastname, &staff.Email, &staff.Password,
		&staff.Gender, &staff.LicenseNumber, &staff.VehicleType, &staff.IsActive, &staff.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: delivery staff", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get delivery staff: %v", err)
	}

	return &staff, nil
}

func (dsr *deliveryStaffRepository) GetDeliveryStaffByEmail(ctx context.Context, email string) (*domain.DeliveryStaff, error) {
	query := `
		SELECT id, firstname, lastname, email, password, gender, license_number, vehicle_type, is_active, date_joined
		FROM delivery_staff
		WHERE email = $1;
	`

	var staff domain.DeliveryStaff
	err := dsr.db.QueryRow(ctx, query, email).Scan(
		&staff.ID, &staff.Firstname, &staff.Lastname, &staff.Email, &staff.Password,
		&staff.Gender, &staff.LicenseNumber, &staff.VehicleType, &staff.IsActive, &staff.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: delivery staff", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get delivery staff: %v", err)
	}

	return &staff, nil
}
