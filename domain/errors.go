package domain

import "errors"

// Sentinel errors shared by repositories and usecases. Delivery maps them
// onto HTTP statuses.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicate           = errors.New("record already exists")
	ErrInvalidCredentials  = errors.New("invalid login credentials")
	ErrForbidden           = errors.New("you do not have access to this resource")
	ErrHospitalNotApproved = errors.New("only approved hospitals can perform this action")
)
