package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type donorRepository struct {
	db *pgxpool.Pool
}

func NewDonorRepository(database *pgxpool.Pool) domain.DonorRepo {
	return &donorRepository{
		db: database,
	}
}

func (dr *donorRepository) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	insertQuery := `
		INSERT INTO donors (firstname, lastname, dob, gender, email, password, blood_type, phone_number, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := dr.db.QueryRow(ctx, insertQuery,
		donor.Firstname, donor.Lastname, donor.DOB, donor.Gender, donor.Email,
		donor.Password, donor.BloodType, donor.PhoneNumber, true, now,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email or phone number already registered", domain.ErrDuplicate)
		}
		return fmt.Errorf("could not insert donor: %v", err)
	}

	donor.ID = id
	donor.IsActive = true
	donor.DateJoined = now

	return nil
}

func (dr *donorRepository) GetDonorByID(ctx context.Context, id int) (*domain.Donor, error) {
	query := `
		SELECT id, firstname, lastname, dob, gender, email, password, blood_type, phone_number, device_token, is_active, date_joined, deleted_at
		FROM donors
		WHERE id = $1 AND deleted_at IS NULL;
	`

	var donor domain.Donor
	err := dr.db.QueryRow(ctx, query, id).Scan(
		&donor.ID, &donor.Firstname, &donor.Lastname, &donor.DOB, &donor.Gender,
		&donor.Email, &donor.Password, &donor.BloodType, &donor.PhoneNumber,
		&donor.DeviceToken, &donor.IsActive, &donor.DateJoined, &donor.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: donor", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get donor: %v", err)
	}

	return &donor, nil
}

func (dr *donorRepository) GetDonorByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	query := `
		SELECT id, firstname, lastname, dob, gender, email, password, blood_type, phone_number, device_token, is_active, date_joined, deleted_at
		FROM donors
		WHERE email = $1 AND deleted_at IS NULL;
	`

	var donor domain.Donor
	err := dr.db.QueryRow(ctx, query, email).Scan(
		&donor.ID, &donor.Firstname, &donor.Lastname, &donor.DOB, &donor.Gender,
		&donor.Email, &donor.Password, &donor.BloodType, &donor.PhoneNumber,
		&donor.DeviceToken, &donor.IsActive, &donor.DateJoined, &donor.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: donor", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get donor: %v", err)
	}

	return &donor, nil
}

func (dr *donorRepository) UpdateDonor(ctx context.Context, id int, payload *domain.DonorUpdatePayload) (*domain.Donor, error) {
	query := `
		UPDATE donors
		SET firstname = COALESCE($1, firstname),
			lastname = COALESCE($2, lastname),
			gender = COALESCE($3, gender),
			phone_number = COALESCE($4, phone_number),
			device_token = COALESCE($5, device_token)
		WHERE id = $6 AND deleted_at IS NULL
		RETURNING id, firstname, lastname, dob, gender, email, password, blood_type, phone_number, device_token, is_active, date_joined, deleted_at;
	`

	var donor domain.Donor
	err := dr.db.QueryRow(ctx, query,
		payload.Firstname, payload.Lastname, payload.Gender, payload.PhoneNumber, payload.DeviceToken, id,
	).Scan(
		&donor.ID, &donor.Firstname, &donor.Lastname, &donor.DOB, &donor.Gender,
		&donor.Email, &donor.Password, &donor.BloodType, &donor.PhoneNumber,
		&donor.DeviceToken, &donor.IsActive, &donor.DateJoined, &donor.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: donor", domain.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone number already registered", domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("could not update donor: %v", err)
	}

	return &donor, nil
}

func (dr *donorRepository) DeactivateDonor(ctx context.Context, id int) error {
	query := `
		UPDATE donors
		SET deleted_at = $1, is_active = FALSE
		WHERE id = $2 AND deleted_at IS NULL;
	`

	tag, err := dr.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("could not deactivate donor: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: donor", domain.ErrNotFound)
	}

	return nil
}

func (dr *donorRepository) FindEligibleDonors(ctx context.Context, bloodType string) (*[]domain.Donor, error) {
	query := `
		SELECT id, firstname, lastname, dob, gender, email, password, blood_type, phone_number, device_token, is_active, date_joined, deleted_at
		FROM donors
		WHERE blood_type = $1 AND is_active = TRUE AND deleted_at IS NULL;
	`

	rows, err := dr.db.Query(ctx, query, bloodType)
	if err != nil {
		return nil, fmt.Errorf("could not find eligible donors: %v", err)
	}
	defer rows.Close()

	var donors []domain.Donor
	for rows.Next() {
		var donor domain.Donor
		err := rows.Scan(
			&donor.ID, &donor.Firstname, &donor.Lastname, &donor.DOB, &donor.Gender,
			&donor.Email, &donor.Password, &donor.BloodType, &donor.PhoneNumber,
			&donor.DeviceToken, &donor.IsActive, &donor.DateJoined, &donor.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan donor: %v", err)
		}
		donors = append(donors, donor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &donors, nil
}
