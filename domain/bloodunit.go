package domain

import (
	"context"
	"time"
)

// ShelfLife is the fixed validity window assigned to every blood unit at
// creation. The expiration date is never client-supplied.
const ShelfLife = 42 * 24 * time.Hour

// LowStockThreshold: a blood type whose available total falls below this
// raises the low-stock alert.
const LowStockThreshold = 5

const (
	UnitStatusAvailable = "available"
	UnitStatusUsed      = "used"
	UnitStatusExpired   = "expired"
)

type BloodUnit struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	HospitalID     int       `gorm:"not null;index" json:"hospital_id"`
	BloodType      string    `gorm:"type:varchar(3);not null" json:"blood_type" valid:"required~Blood type is required"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Status         string    `gorm:"type:varchar(10);not null;default:available" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	ExpirationDate time.Time `gorm:"type:date;not null" json:"expiration_date"`
}

// BloodUnitDetail is a unit plus its read-time expiry distance in whole
// days. Negative means already expired; the stored status is not flipped.
type BloodUnitDetail struct {
	BloodUnit
	DaysToExpire int `json:"days_to_expire"`
}

type BloodTypeSummary struct {
	BloodType     string `json:"blood_type"`
	TotalQuantity int    `json:"total_quantity"`
	LowStockAlert bool   `json:"low_stock_alert"`
}

type BloodUnitUpdatePayload struct {
	Quantity *int    `json:"quantity"`
	Status   *string `json:"status"`
}

type BloodUnitRepo interface {
	CreateBloodUnit(ctx context.Context, unit *BloodUnit) error
	GetBloodUnitsByHospital(ctx context.Context, hospitalID int) (*[]BloodUnit, error)
	GetBloodUnitByID(ctx context.Context, hospitalID, id int) (*BloodUnit, error)
	GetAvailableUnitsByType(ctx context.Context, hospitalID int, bloodType string) (*[]BloodUnit, error)
	SummarizeAvailableUnits(ctx context.Context, hospitalID int) (*[]BloodTypeSummary, error)
	UpdateBloodUnit(ctx context.Context, unit *BloodUnit) error
	DeleteBloodUnit(ctx context.Context, hospitalID, id int) error
}

type BloodUnitUseCase interface {
	CreateBloodUnitUC(ctx context.Context, hospitalID int, unit *BloodUnit) error
	GetAllBloodUnitsUC(ctx context.Context, hospitalID int) (*[]BloodUnit, error)
	GetBloodUnitByIDUC(ctx context.Context, hospitalID, id int) (*BloodUnit, error)
	GetBloodUnitSummaryUC(ctx context.Context, hospitalID int) (*[]BloodTypeSummary, error)
	GetBloodUnitsByTypeUC(ctx context.Context, hospitalID int, bloodType string) (*[]BloodUnitDetail, error)
	UpdateBloodUnitUC(ctx context.Context, hospitalID, id int, payload *BloodUnitUpdatePayload) (*BloodUnit, error)
	DeleteBloodUnitUC(ctx context.Context, hospitalID, id int) error
}
