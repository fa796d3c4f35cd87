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

type hospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(database *pgxpool.Pool) domain.HospitalRepo {
	return &hospitalRepository{
		db: database,
	}
}

func (hr *hospitalRepository) CreateHospital(ctx context.Context, hospital *domain.Hospital) error {
	insertQuery := `
		INSERT INTO hospitals (hospital_name, staff_name, staff_id, email, password, contact_info, address, documents, approval_status, is_active, date_registered)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := hr.db.QueryRow(ctx, insertQuery,
		hospital.HospitalName, hospital.StaffName, hospital.StaffID, hospital.Email,
		hospital.Password, hospital.ContactInfo, hospital.Address, hospital.Documents,
		domain.ApprovalPending, true, now,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email or staff ID already registered", domain.ErrDuplicate)
		}
		return fmt.Errorf("could not insert hospital: %v", err)
	}

	hospital.ID = id
	hospital.ApprovalStatus = domain.ApprovalPending
	hospital.IsActive = true
	hospital.DateRegistered = now

	return nil
}

func (hr *hospitalRepository) GetHospitalByID(ctx context.Context, id int) (*domain.Hospital, error) {
	query := `
		SELECT id, hospital_name, staff_name, staff_id, email, password, contact_info, address, documents, approval_status, rejection_reason, is_active, date_registered
		FROM hospitals
		WHERE id = $1;
	`

	var hospital domain.Hospital
	err := hr.db.QueryRow(ctx, query, id).Scan(
		&hospital.ID, &hospital.HospitalName, &hospital.StaffName, &hospital.StaffID,
		&hospital.Email, &hospital.Password, &hospital.ContactInfo, &hospital.Address,
		&hospital.Documents, &hospital.ApprovalStatus, &hospital.RejectionReason,
		&hospital.IsActive, &hospital.DateRegistered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: hospital", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get hospital: %v", err)
	}

	return &hospital, nil
}

func (hr *hospitalRepository) GetHospitalByEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	query := `
		SELECT id, hospital_name, staff_name, staff_id, email, password, contact_info, address, documents, approval_status, rejection_reason, is_active, date_registered
		FROM hospitals
		WHERE email = $1;
	`

	var hospital domain.Hospital
	err := hr.db.QueryRow(ctx, query, email).Scan(
		&hospital.ID, &hospital.HospitalName, &hospital.StaffName, &hospital.StaffID,
		&hospital.Email, &hospital.Password, &hospital.ContactInfo, &hospital.Address,
		&hospital.Documents, &hospital.ApprovalStatus, &hospital.RejectionReason,
		&hospital.IsActive, &hospital.DateRegistered,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: hospital", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get hospital: %v", err)
	}

	return &hospital, nil
}
