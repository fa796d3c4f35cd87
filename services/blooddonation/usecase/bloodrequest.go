package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/sirupsen/logrus"
)

const notificationTitle = "Urgent Blood Donation Request!"

type bloodRequestUC struct {
	requestRepo  domain.BloodRequestRepo
	hospitalRepo domain.HospitalRepo
	donorRepo    domain.DonorRepo
	push         domain.PushSender
	log          *logrus.Logger
	TimeOut      time.Duration
}

func NewBloodRequestUseCase(requestRepo domain.BloodRequestRepo, hospitalRepo domain.HospitalRepo, donorRepo domain.DonorRepo, push domain.PushSender, log *logrus.Logger, timeOut time.Duration) domain.BloodRequestUseCase {
	return &bloodRequestUC{
		requestRepo:  requestRepo,
		hospitalRepo: hospitalRepo,
		donorRepo:    donorRepo,
		push:         push,
		log:          log,
		TimeOut:      timeOut,
	}
}

// CreateBloodRequestUC persists a new request for an approved hospital and
// kicks off the donor push fan-out. A dispatch failure never fails the
// creation.
func (brUC *bloodRequestUC) CreateBloodRequestUC(ctx context.Context, hospitalID int, req *domain.BloodRequest) error {
	ctx, cancel := context.WithTimeout(ctx, brUC.TimeOut)
	defer cancel()

	hospital, err := brUC.hospitalRepo.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital.ApprovalStatus != domain.ApprovalApproved {
		return domain.ErrHospitalNotApproved
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
	}
	if !domain.IsValidBloodType(req.BloodType) {
		return fmt.Errorf("%w: invalid blood type %s", domain.ErrValidation, req.BloodType)
	}
	if req.PriorityLevel != domain.PriorityUrgent && req.PriorityLevel != domain.PriorityNormal {
		return fmt.Errorf("%w: invalid priority level %s", domain.ErrValidation, req.PriorityLevel)
	}

	// New requests always start pending regardless of the client payload.
	req.HospitalID = hospitalID
	req.Status = domain.RequestStatusPending
	req.FulfilledAt = nil

	if err := brUC.requestRepo.CreateBloodRequest(ctx, req); err != nil {
		return err
	}

	req.HospitalName = hospital.HospitalName
	req.ContactInfo = hospital.ContactInfo

	go brUC.dispatchDonorNotifications(hospital, req)

	return nil
}

// dispatchDonorNotifications sends one push message to every active donor
// whose blood type matches the request and who has a device token. Failures
// are isolated per recipient and only logged.
func (brUC *bloodRequestUC) dispatchDonorNotifications(hospital *domain.Hospital, req *domain.BloodRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), brUC.TimeOut)
	defer cancel()

	donors, err := brUC.donorRepo.FindEligibleDonors(ctx, req.BloodType)
	if err != nil {
		brUC.log.Errorf("Failed to fetch eligible donors for request %d: %v", req.ID, err)
		return
	}

	address := hospital.Address
	if address == "" {
		address = "N/A"
	}

	body := fmt.Sprintf("%s needs %d units of %s blood. Contact: %s. Location: %s.",
		hospital.HospitalName, req.Quantity, req.BloodType, hospital.ContactInfo, address)

	brUC.log.Infof("Dispatching blood request %d to %d eligible donors", req.ID, len(*donors))

	for _, donor := range *donors {
		if donor.DeviceToken == nil || *donor.DeviceToken == "" {
			brUC.log.Infof("Donor %s has no device token, skipping", donor.Email)
			continue
		}

		msg := &domain.PushMessage{
			Token: *donor.DeviceToken,
			Title: notificationTitle,
			Body:  body,
		}
		if err := brUC.push.Send(ctx, msg); err != nil {
			brUC.log.Errorf("Failed to send notification to %s: %v", donor.Email, err)
			continue
		}
	}
}

func (brUC *bloodRequestUC) GetAllBloodRequestsUC(ctx context.Context, hospitalID int) (*[]domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, brUC.TimeOut)
	defer cancel()

	requests, err := brUC.requestRepo.GetBloodRequestsByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (brUC *bloodRequestUC) GetBloodRequestByIDUC(ctx context.Context, hospitalID, id int) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, brUC.TimeOut)
	defer cancel()

	req, err := brUC.requestRepo.GetBloodRequestByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateBloodRequestUC applies a partial update. The transition into
// fulfilled stamps fulfilled_at exactly once; re-fulfilling an already
// fulfilled request leaves the timestamp unchanged.
func (brUC *bloodRequestUC) UpdateBloodRequestUC(ctx context.Context, hospitalID, id int, payload *domain.BloodRequestUpdatePayload) (*domain.BloodRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, brUC.TimeOut)
	defer cancel()

	hospital, err := brUC.hospitalRepo.GetHospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital.ApprovalStatus != domain.ApprovalApproved {
		return nil, domain.ErrHospitalNotApproved
	}

	req, err := brUC.requestRepo.GetBloodRequestByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}

	if payload.BloodType != nil {
		if !domain.IsValidBloodType(*payload.BloodType) {
			return nil, fmt.Errorf("%w: invalid blood type %s", domain.ErrValidation, *payload.BloodType)
		}
		req.BloodType = *payload.BloodType
	}
	if payload.Quantity != nil {
		if *payload.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrValidation)
		}
		req.Quantity = *payload.Quantity
	}
	if payload.PriorityLevel != nil {
		if *payload.PriorityLevel != domain.PriorityUrgent && *payload.PriorityLevel != domain.PriorityNormal {
			return nil, fmt.Errorf("%w: invalid priority level %s", domain.ErrValidation, *payload.PriorityLevel)
		}
		req.PriorityLevel = *payload.PriorityLevel
	}
	if payload.Status != nil {
		switch *payload.Status {
		case domain.RequestStatusPending, domain.RequestStatusFulfilled, domain.RequestStatusCanceled:
		default:
			return nil, fmt.Errorf("%w: invalid status %s", domain.ErrValidation, *payload.Status)
		}

		if *payload.Status == domain.RequestStatusFulfilled && req.Status != domain.RequestStatusFulfilled {
			now := time.Now()
			req.FulfilledAt = &now
		}
		req.Status = *payload.Status
	}

	if err := brUC.requestRepo.UpdateBloodRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (brUC *bloodRequestUC) DeleteBloodRequestUC(ctx context.Context, hospitalID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, brUC.TimeOut)
	defer cancel()

	err := brUC.requestRepo.DeleteBloodRequest(ctx, hospitalID, id)
	if err != nil {
		return err
	}
	return nil
}
