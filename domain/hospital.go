package domain

import (
	"context"
	"time"
)

// Hospital approval lifecycle. Only approved hospitals may create or update
// blood requests and manage inventory; the approval flip itself happens
// out-of-band through an administrative actor.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type Hospital struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalName    string    `gorm:"type:varchar(255);not null" json:"hospital_name" valid:"required~Hospital name is required"`
	StaffName       string    `gorm:"type:varchar(255);not null" json:"staff_name" valid:"required~Staff name is required"`
	StaffID         string    `gorm:"type:varchar(50);not null;unique" json:"staff_id" valid:"required~Staff ID is required"`
	Email           string    `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password        string    `gorm:"type:varchar(255);not null" json:"password,omitempty" valid:"required~Password is required"`
	ContactInfo     string    `gorm:"type:varchar(100);not null" json:"contact_info" valid:"required~Contact info is required"`
	Address         string    `gorm:"type:text" json:"address"`
	Documents       string    `gorm:"type:varchar(255)" json:"documents"`
	ApprovalStatus  string    `gorm:"type:varchar(10);not null;default:pending" json:"approval_status"`
	RejectionReason *string   `gorm:"type:text" json:"rejection_reason,omitempty"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	DateRegistered  time.Time `gorm:"autoCreateTime" json:"date_registered"`
}

// SafeHospitalData is the hospital profile without the password hash.
type SafeHospitalData struct {
	ID              int       `json:"id"`
	HospitalName    string    `json:"hospital_name"`
	StaffName       string    `json:"staff_name"`
	StaffID         string    `json:"staff_id"`
	Email           string    `json:"email"`
	ContactInfo     string    `json:"contact_info"`
	Address         string    `json:"address"`
	Documents       string    `json:"documents"`
	ApprovalStatus  string    `json:"approval_status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	DateRegistered  time.Time `json:"date_registered"`
}

type HospitalRepo interface {
	CreateHospital(ctx context.Context, hospital *Hospital) error
	GetHospitalByID(ctx context.Context, id int) (*Hospital, error)
	GetHospitalByEmail(ctx context.Context, email string) (*Hospital, error)
}

type HospitalUseCase interface {
	RegisterHospitalUC(ctx context.Context, hospital *Hospital) error
	GetHospitalDetailsUC(ctx context.Context, id int) (*SafeHospitalData, error)
}
