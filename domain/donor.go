package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// The eight recognized blood types. Requests and units share the same set.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidBloodType(bt string) bool {
	for _, v := range BloodTypes {
		if v == bt {
			return true
		}
	}
	return false
}

type Donor struct {
	ID          int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname   string         `gorm:"type:varchar(255);not null" json:"firstname" valid:"required~Firstname is required"`
	Lastname    string         `gorm:"type:varchar(255);not null" json:"lastname" valid:"required~Lastname is required"`
	DOB         time.Time      `gorm:"type:date;not null" json:"dob"`
	Gender      string         `gorm:"type:varchar(7);not null" json:"gender" valid:"required~Gender is required,in(Male|Female|Other)~Invalid gender"`
	Email       string         `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password    string         `gorm:"type:varchar(255);not null" json:"password,omitempty" valid:"required~Password is required"`
	BloodType   string         `gorm:"type:varchar(3);not null" json:"blood_type" valid:"required~Blood type is required"`
	PhoneNumber string         `gorm:"type:varchar(15);not null;unique" json:"phone_number" valid:"required~Phone number is required"`
	DeviceToken *string        `gorm:"type:varchar(255)" json:"device_token,omitempty"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	DateJoined  time.Time      `gorm:"autoCreateTime" json:"date_joined"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// DonorUpdatePayload carries a partial profile update; nil fields are left
// untouched.
type DonorUpdatePayload struct {
	Firstname   *string `json:"firstname"`
	Lastname    *string `json:"lastname"`
	Gender      *string `json:"gender"`
	PhoneNumber *string `json:"phone_number"`
	DeviceToken *string `json:"device_token"`
}

type DonorRepo interface {
	CreateDonor(ctx context.Context, donor *Donor) error
	GetDonorByID(ctx context.Context, id int) (*Donor, error)
	GetDonorByEmail(ctx context.Context, email string) (*Donor, error)
	UpdateDonor(ctx context.Context, id int, payload *DonorUpdatePayload) (*Donor, error)
	DeactivateDonor(ctx context.Context, id int) error
	FindEligibleDonors(ctx context.Context, bloodType string) (*[]Donor, error)
}

type DonorUseCase interface {
	RegisterDonorUC(ctx context.Context, donor *Donor) error
	GetDonorByIDUC(ctx context.Context, id int) (*Donor, error)
	UpdateDonorUC(ctx context.Context, id int, payload *DonorUpdatePayload) (*Donor, error)
	DeactivateDonorUC(ctx context.Context, id int) error
}
