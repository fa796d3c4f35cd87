package domain

import "context"

// Principal kinds carried inside issued tokens. Each kind authenticates
// against its own table only.
const (
	KindDonor         = "donor"
	KindDeliveryStaff = "delivery_staff"
	KindHospital      = "hospital"
)

type LoginRequest struct {
	Email    string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" valid:"required~Refresh token is required"`
}

// Principal is the identity behind a verified token: exactly one record of
// exactly one kind.
type Principal struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

// AuthUseCase verifies credentials against a single principal kind. Token
// issuance happens in delivery once the principal is resolved.
type AuthUseCase interface {
	Authenticate(ctx context.Context, kind string, req *LoginRequest) (*Principal, error)
}
