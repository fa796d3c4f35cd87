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

type bloodRequestRepository struct {
	db *pgxpool.Pool
}

func NewBloodRequestRepository(database *pgxpool.Pool) domain.BloodRequestRepo {
	return &bloodRequestRepository{
		db: database,
	}
}

func (br *bloodRequestRepository) CreateBloodRequest(ctx context.Context, req *domain.BloodRequest) error {
	insertQuery := `
		INSERT INTO blood_requests (hospital_id, blood_type, quantity, priority_level, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := br.db.QueryRow(ctx, insertQuery,
		req.HospitalID, req.BloodType, req.Quantity, req.PriorityLevel, domain.RequestStatusPending, now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert blood request: %v", err)
	}

	req.ID = id
	req.Status = domain.RequestStatusPending
	req.CreatedAt = now
	req.FulfilledAt = nil

	return nil
}

func (br *bloodRequestRepository) GetBloodRequestsByHospital(ctx context.Context, hospitalID int) (*[]domain.BloodRequest, error) {
	query := `
		SELECT r.id, r.hospital_id, h.hospital_name, h.contact_info, r.blood_type, r.quantity, r.priority_level, r.status, r.created_at, r.fulfilled_at
		FROM blood_requests r
		JOIN hospitals h ON r.hospital_id = h.id
		WHERE r.hospital_id = $1
		ORDER BY r.created_at DESC;
	`

	rows, err := br.db.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("could not get blood requests: %v", err)
	}
	defer rows.Close()

	var requests []domain.BloodRequest
	for rows.Next() {
		var req domain.BloodRequest
		err := rows.Scan(
			&req.ID, &req.HospitalID, &req.HospitalName, &req.ContactInfo,
			&req.BloodType, &req.Quantity, &req.PriorityLevel, &req.Status,
			&req.CreatedAt, &req.FulfilledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan blood request: %v", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &requests, nil
}

func (br *bloodRequestRepository) GetBloodRequestByID(ctx context.Context, hospitalID, id int) (*domain.BloodRequest, error) {
	query := `
		SELECT r.id, r.hospital_id, h.hospital_name, h.contact_info, r.blood_type, r.quantity, r.priority_level, r.status, r.created_at, r.fulfilled_at
		FROM blood_requests r
		JOIN hospitals h ON r.hospital_id = h.id
		WHERE r.id = $1 AND r.hospital_id = $2;
	`

	var req domain.BloodRequest
	err := br.db.QueryRow(ctx, query, id, hospitalID).Scan(
		&req.ID, &req.HospitalID, &req.HospitalName, &req.ContactInfo,
		&req.BloodType, &req.Quantity, &req.PriorityLevel, &req.Status,
		&req.CreatedAt, &req.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: blood request", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get blood request: %v", err)
	}

	return &req, nil
}

func (br *bloodRequestRepository) UpdateBloodRequest(ctx context.Context, req *domain.BloodRequest) error {
	query := `
		UPDATE blood_requests
		SET blood_type = $1, quantity = $2, priority_level = $3, status = $4, fulfilled_at = $5
		WHERE id = $6 AND hospital_id = $7;
	`

	tag, err := br.db.Exec(ctx, query,
		req.BloodType, req.Quantity, req.PriorityLevel, req.Status, req.FulfilledAt,
		req.ID, req.HospitalID,
	)
	if err != nil {
		return fmt.Errorf("could not update blood request: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood request", domain.ErrNotFound)
	}

	return nil
}

func (br *bloodRequestRepository) DeleteBloodRequest(ctx context.Context, hospitalID, id int) error {
	query := `
		DELETE FROM blood_requests
		WHERE id = $1 AND hospital_id = $2;
	`

	tag, err := br.db.Exec(ctx, query, id, hospitalID)
	if err != nil {
		return fmt.Errorf("could not delete blood request: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: blood request", domain.ErrNotFound)
	}

	return nil
}
