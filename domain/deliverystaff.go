package domain

import (
	"context"
	"time"
)

type DeliveryStaff struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname     string    `gorm:"type:varchar(255);not null" json:"firstname" valid:"required~Firstname is required"`
	Lastname      string    `gorm:"type:varchar(255);not null" json:"lastname" valid:"required~Lastname is required"`
	Email         string    `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password      string    `gorm:"type:varchar(255);not null" json:"password,omitempty" valid:"required~Password is required"`
	Gender        string    `gorm:"type:varchar(7);not null" json:"gender" valid:"required~Gender is required,in(Male|Female|Other)~Invalid gender"`
	LicenseNumber string    `gorm:"type:varchar(50);not null;unique" json:"license_number" valid:"required~License number is required"`
	VehicleType   string    `gorm:"type:varchar(50);not null" json:"vehicle_type" valid:"required~Vehicle type is required"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	DateJoined    time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

type DeliveryStaffRepo interface {
	CreateDeliveryStaff(ctx context.Context, staff *DeliveryStaff) error
	GetDeliveryStaffByID(ctx context.Context, id int) (*DeliveryStaff, error)
	GetDeliveryStaffByEmail(ctx context.Context, email string) (*DeliveryStaff, error)
}

type DeliveryStaffUseCase interface {
	RegisterDeliveryStaffUC(ctx context.Context, staff *DeliveryStaff) error
	GetDeliveryStaffByIDUC(ctx context.Context, id int) (*DeliveryStaff, error)
}
