package domain

import (
	"context"
	"time"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusFulfilled = "fulfilled"
	RequestStatusCanceled  = "canceled"

	PriorityUrgent = "urgent"
	PriorityNormal = "normal"
)

type BloodRequest struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID    int        `gorm:"not null;index" json:"hospital_id"`
	HospitalName  string     `gorm:"-" json:"hospital_name,omitempty"`
	ContactInfo   string     `gorm:"-" json:"contact_info,omitempty"`
	BloodType     string     `gorm:"type:varchar(3);not null" json:"blood_type" valid:"required~Blood type is required"`
	Quantity      int        `gorm:"not null" json:"quantity"`
	PriorityLevel string     `gorm:"type:varchar(10);not null" json:"priority_level" valid:"required~Priority level is required,in(urgent|normal)~Invalid priority level"`
	Status        string     `gorm:"type:varchar(10);not null;default:pending" json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	FulfilledAt   *time.Time `json:"fulfilled_at"`
}

// BloodRequestUpdatePayload carries a partial update; nil fields are left
// untouched.
type BloodRequestUpdatePayload struct {
	BloodType     *string `json:"blood_type"`
	Quantity      *int    `json:"quantity"`
	PriorityLevel *string `json:"priority_level"`
	Status        *string `json:"status"`
}

type BloodRequestRepo interface {
	CreateBloodRequest(ctx context.Context, req *BloodRequest) error
	GetBloodRequestsByHospital(ctx context.Context, hospitalID int) (*[]BloodRequest, error)
	GetBloodRequestByID(ctx context.Context, hospitalID, id int) (*BloodRequest, error)
	UpdateBloodRequest(ctx context.Context, req *BloodRequest) error
	DeleteBloodRequest(ctx context.Context, hospitalID, id int) error
}

type BloodRequestUseCase interface {
	CreateBloodRequestUC(ctx context.Context, hospitalID int, req *BloodRequest) error
	GetAllBloodRequestsUC(ctx context.Context, hospitalID int) (*[]BloodRequest, error)
	GetBloodRequestByIDUC(ctx context.Context, hospitalID, id int) (*BloodRequest, error)
	UpdateBloodRequestUC(ctx context.Context, hospitalID, id int, payload *BloodRequestUpdatePayload) (*BloodRequest, error)
	DeleteBloodRequestUC(ctx context.Context, hospitalID, id int) error
}
