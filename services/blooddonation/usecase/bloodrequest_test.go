package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mohan160597/blood-donation/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingPushSender captures every send on a channel so tests can wait
// for the async fan-out to finish.
type recordingPushSender struct {
	ch       chan domain.PushMessage
	failWith map[string]error
}

func newRecordingPushSender() *recordingPushSender {
	return &recordingPushSender{
		ch:       make(chan domain.PushMessage, 16),
		failWith: make(map[string]error),
	}
}

func (r *recordingPushSender) Send(ctx context.Context, msg *domain.PushMessage) error {
	r.ch <- *msg
	if err, ok := r.failWith[msg.Token]; ok {
		return err
	}
	return nil
}

func (r *recordingPushSender) waitForSends(t *testing.T, n int) []domain.PushMessage {
	t.Helper()
	var sent []domain.PushMessage
	timeout := time.After(2 * time.Second)
	for len(sent) < n {
		select {
		case msg := <-r.ch:
			sent = append(sent, msg)
		case <-timeout:
			t.Fatalf("timed out waiting for %d push sends, got %d", n, len(sent))
		}
	}
	return sent
}

func (r *recordingPushSender) assertNoMoreSends(t *testing.T) {
	t.Helper()
	select {
	case msg := <-r.ch:
		t.Fatalf("unexpected extra push send to token %q", msg.Token)
	case <-time.After(100 * time.Millisecond):
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func approvedHospital() *domain.Hospital {
	return &domain.Hospital{
		ID:             1,
		HospitalName:   "City General Hospital",
		ContactInfo:    "555-0100",
		Address:        "12 Main St",
		ApprovalStatus: domain.ApprovalApproved,
	}
}

func newRequestUC(requestRepo *mockBloodRequestRepo, hospitalRepo *mockHospitalRepo, donorRepo *mockDonorRepo, push domain.PushSender) domain.BloodRequestUseCase {
	log := logrus.New()
	return NewBloodRequestUseCase(requestRepo, hospitalRepo, donorRepo, push, log, 2*time.Second)
}

func TestCreateBloodRequestNotifiesMatchingDonorsWithTokens(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospital := approvedHospital()
	hospital.Address = ""
	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(hospital, nil)
	requestRepo.On("CreateBloodRequest", mock.Anything, mock.AnythingOfType("*domain.BloodRequest")).Return(nil)

	donors := []domain.Donor{
		{ID: 1, Email: "with-token@example.com", BloodType: "O-", IsActive: true, DeviceToken: strPtr("tok-1")},
		{ID: 2, Email: "nil-token@example.com", BloodType: "O-", IsActive: true},
		{ID: 3, Email: "empty-token@example.com", BloodType: "O-", IsActive: true, DeviceToken: strPtr("")},
	}
	donorRepo.On("FindEligibleDonors", mock.Anything, "O-").Return(&donors, nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	req := domain.BloodRequest{
		BloodType:     "O-",
		Quantity:      3,
		PriorityLevel: domain.PriorityUrgent,
		Status:        domain.RequestStatusFulfilled, // client-supplied status is ignored
	}
	err := uc.CreateBloodRequestUC(context.Background(), 1, &req)
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Nil(t, req.FulfilledAt)
	assert.Equal(t, "City General Hospital", req.HospitalName)

	sent := push.waitForSends(t, 1)
	push.assertNoMoreSends(t)

	assert.Equal(t, "tok-1", sent[0].Token)
	assert.Equal(t, "Urgent Blood Donation Request!", sent[0].Title)
	assert.Equal(t, "City General Hospital needs 3 units of O- blood. Contact: 555-0100. Location: N/A.", sent[0].Body)

	requestRepo.AssertExpectations(t)
}

func TestCreateBloodRequestPushFailureDoesNotAbortFanOut(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()
	push.failWith["tok-1"] = errors.New("device unreachable")

	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(approvedHospital(), nil)
	requestRepo.On("CreateBloodRequest", mock.Anything, mock.AnythingOfType("*domain.BloodRequest")).Return(nil)

	donors := []domain.Donor{
		{ID: 1, Email: "a@example.com", BloodType: "A+", IsActive: true, DeviceToken: strPtr("tok-1")},
		{ID: 2, Email: "b@example.com", BloodType: "A+", IsActive: true, DeviceToken: strPtr("tok-2")},
	}
	donorRepo.On("FindEligibleDonors", mock.Anything, "A+").Return(&donors, nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	req := domain.BloodRequest{BloodType: "A+", Quantity: 2, PriorityLevel: domain.PriorityNormal}
	err := uc.CreateBloodRequestUC(context.Background(), 1, &req)
	require.NoError(t, err)

	sent := push.waitForSends(t, 2)
	tokens := []string{sent[0].Token, sent[1].Token}
	assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, tokens)
}

func TestCreateBloodRequestUnapprovedHospital(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospital := approvedHospital()
	hospital.ApprovalStatus = domain.ApprovalPending
	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(hospital, nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	req := domain.BloodRequest{BloodType: "O-", Quantity: 3, PriorityLevel: domain.PriorityUrgent}
	err := uc.CreateBloodRequestUC(context.Background(), 1, &req)

	require.ErrorIs(t, err, domain.ErrHospitalNotApproved)
	requestRepo.AssertNotCalled(t, "CreateBloodRequest", mock.Anything, mock.Anything)
	push.assertNoMoreSends(t)
}

func TestCreateBloodRequestRejectsNonPositiveQuantity(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(approvedHospital(), nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	for _, qty := range []int{0, -3} {
		req := domain.BloodRequest{BloodType: "B+", Quantity: qty, PriorityLevel: domain.PriorityNormal}
		err := uc.CreateBloodRequestUC(context.Background(), 1, &req)
		require.ErrorIs(t, err, domain.ErrValidation)
	}
	requestRepo.AssertNotCalled(t, "CreateBloodRequest", mock.Anything, mock.Anything)
}

func TestCreateBloodRequestRejectsUnknownBloodType(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(approvedHospital(), nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	req := domain.BloodRequest{BloodType: "C+", Quantity: 1, PriorityLevel: domain.PriorityNormal}
	err := uc.CreateBloodRequestUC(context.Background(), 1, &req)
	require.ErrorIs(t, err, domain.ErrValidation)
	requestRepo.AssertNotCalled(t, "CreateBloodRequest", mock.Anything, mock.Anything)
}

func TestUpdateBloodRequestStampsFulfilledAtOnce(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(approvedHospital(), nil)

	existing := &domain.BloodRequest{
		ID:            7,
		HospitalID:    1,
		BloodType:     "AB-",
		Quantity:      2,
		PriorityLevel: domain.PriorityUrgent,
		Status:        domain.RequestStatusPending,
	}
	requestRepo.On("GetBloodRequestByID", mock.Anything, 1, 7).Return(existing, nil)
	requestRepo.On("UpdateBloodRequest", mock.Anything, mock.AnythingOfType("*domain.BloodRequest")).Return(nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	payload := &domain.BloodRequestUpdatePayload{Status: strPtr(domain.RequestStatusFulfilled)}
	updated, err := uc.UpdateBloodRequestUC(context.Background(), 1, 7, payload)
	require.NoError(t, err)
	require.NotNil(t, updated.FulfilledAt)
	assert.Equal(t, domain.RequestStatusFulfilled, updated.Status)

	stamped := *updated.FulfilledAt

	// Re-fulfilling must not move the timestamp.
	again, err := uc.UpdateBloodRequestUC(context.Background(), 1, 7, payload)
	require.NoError(t, err)
	require.NotNil(t, again.FulfilledAt)
	assert.Equal(t, stamped, *again.FulfilledAt)
}

func TestUpdateBloodRequestLeavesFulfilledAtOnOtherFieldChange(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(approvedHospital(), nil)

	stamped := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.BloodRequest{
		ID:            9,
		HospitalID:    1,
		BloodType:     "O+",
		Quantity:      4,
		PriorityLevel: domain.PriorityNormal,
		Status:        domain.RequestStatusFulfilled,
		FulfilledAt:   &stamped,
	}
	requestRepo.On("GetBloodRequestByID", mock.Anything, 1, 9).Return(existing, nil)
	requestRepo.On("UpdateBloodRequest", mock.Anything, mock.AnythingOfType("*domain.BloodRequest")).Return(nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	payload := &domain.BloodRequestUpdatePayload{Quantity: intPtr(6)}
	updated, err := uc.UpdateBloodRequestUC(context.Background(), 1, 9, payload)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)
	require.NotNil(t, updated.FulfilledAt)
	assert.Equal(t, stamped, *updated.FulfilledAt)
}

func TestUpdateBloodRequestUnapprovedHospital(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	hospital := approvedHospital()
	hospital.ApprovalStatus = domain.ApprovalRejected
	hospitalRepo.On("GetHospitalByID", mock.Anything, 1).Return(hospital, nil)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	payload := &domain.BloodRequestUpdatePayload{Status: strPtr(domain.RequestStatusFulfilled)}
	_, err := uc.UpdateBloodRequestUC(context.Background(), 1, 7, payload)
	require.ErrorIs(t, err, domain.ErrHospitalNotApproved)
	requestRepo.AssertNotCalled(t, "UpdateBloodRequest", mock.Anything, mock.Anything)
}

func TestGetBloodRequestByIDNotOwned(t *testing.T) {
	requestRepo := new(mockBloodRequestRepo)
	hospitalRepo := new(mockHospitalRepo)
	donorRepo := new(mockDonorRepo)
	push := newRecordingPushSender()

	requestRepo.On("GetBloodRequestByID", mock.Anything, 2, 7).Return(nil, domain.ErrNotFound)

	uc := newRequestUC(requestRepo, hospitalRepo, donorRepo, push)

	_, err := uc.GetBloodRequestByIDUC(context.Background(), 2, 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
