package usecase

import (
	"context"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/stretchr/testify/mock"
)

type mockDonorRepo struct {
	mock.Mock
}

func (m *mockDonorRepo) CreateDonor(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *mockDonorRepo) GetDonorByID(ctx context.Context, id int) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) GetDonorByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) UpdateDonor(ctx context.Context, id int, payload *domain.DonorUpdatePayload) (*domain.Donor, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *mockDonorRepo) DeactivateDonor(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDonorRepo) FindEligibleDonors(ctx context.Context, bloodType string) (*[]domain.Donor, error) {
	args := m.Called(ctx, bloodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]domain.Donor), args.Error(1)
}

type mockDeliveryStaffRepo struct {
	mock.Mock
}

func (m *mockDeliveryStaffRepo) CreateDeliveryStaff(ctx context.Context, staff *domain.DeliveryStaff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *mockDeliveryStaffRepo) GetDeliveryStaffByID(ctx context.Context, id int) (*domain.DeliveryStaff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryStaff), args.Error(1)
}

func (m *mockDeliveryStaffRepo) GetDeliveryStaffByEmail(ctx context.Context, email string) (*domain.DeliveryStaff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryStaff), args.Error(1)
}

type mockHospitalRepo struct {
	mock.Mock
}

func (m *mockHospitalRepo) CreateHospital(ctx context.Context, hospital *domain.Hospital) error {
	args := m.Called(ctx, hospital)
	return args.Error(0)
}

func (m *mockHospitalRepo) GetHospitalByID(ctx context.Context, id int) (*domain.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) GetHospitalByEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hospital), args.Error(1)
}

type mockBloodRequestRepo struct {
	mock.Mock
}

func (m *mockBloodRequestRepo) CreateBloodRequest(ctx context.Context, req *domain.BloodRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockBloodRequestRepo) GetBloodRequestsByHospital(ctx context.Context, hospitalID int) (*[]domain.BloodRequest, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]domain.BloodRequest), args.Error(1)
}

func (m *mockBloodRequestRepo) GetBloodRequestByID(ctx context.Context, hospitalID, id int) (*domain.BloodRequest, error) {
	args := m.Called(ctx, hospitalID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func (m *mockBloodRequestRepo) UpdateBloodRequest(ctx context.Context, req *domain.BloodRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockBloodRequestRepo) DeleteBloodRequest(ctx context.Context, hospitalID, id int) error {
	args := m.Called(ctx, hospitalID, id)
	return args.Error(0)
}

type mockBloodUnitRepo struct {
	mock.Mock
}

func (m *mockBloodUnitRepo) CreateBloodUnit(ctx context.Context, unit *domain.BloodUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *mockBloodUnitRepo) GetBloodUnitsByHospital(ctx context.Context, hospitalID int) (*[]domain.BloodUnit, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]domain.BloodUnit), args.Error(1)
}

func (m *mockBloodUnitRepo) GetBloodUnitByID(ctx context.Context, hospitalID, id int) (*domain.BloodUnit, error) {
	args := m.Called(ctx, hospitalID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodUnit), args.Error(1)
}

func (m *mockBloodUnitRepo) GetAvailableUnitsByType(ctx context.Context, hospitalID int, bloodType string) (*[]domain.BloodUnit, error) {
	args := m.Called(ctx, hospitalID, bloodType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]domain.BloodUnit), args.Error(1)
}

func (m *mockBloodUnitRepo) SummarizeAvailableUnits(ctx context.Context, hospitalID int) (*[]domain.BloodTypeSummary, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*[]domain.BloodTypeSummary), args.Error(1)
}

func (m *mockBloodUnitRepo) UpdateBloodUnit(ctx context.Context, unit *domain.BloodUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *mockBloodUnitRepo) DeleteBloodUnit(ctx context.Context, hospitalID, id int) error {
	args := m.Called(ctx, hospitalID, id)
	return args.Error(0)
}
