package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellandashawn/fignite/internal/domain"
)

type stubParticipantRepo struct {
	participants []domain.Participant
}

func (r *stubParticipantRepo) Create(_ context.Context, participant domain.Participant) (domain.Participant, error) {
	participant.ID = uint(len(r.participants) + 1)
	r.participants = append(r.participants, participant)

	return participant, nil
}

func (r *stubParticipantRepo) FindByOrderID(_ context.Context, orderID string) (domain.Participant, error) {
	for _, p := range r.participants {
		if p.OrderID == orderID {
			return p, nil
		}
	}

	return domain.Participant{}, ErrParticipantNotFound
}

func (r *stubParticipantRepo) FindByActivityID(_ context.Context, activityID uint) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, p := range r.participants {
		if p.ActivityID == activityID {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *stubParticipantRepo) FindByEmail(_ context.Context, email string) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, p := range r.participants {
		if p.Billing.Email == email {
			out = append(out, p)
		}
	}

	return out, nil
}

func openActivity(id uint, maxSpots, taken int) domain.Activity {
	return domain.Activity{
		ID:   id,
		Kind: domain.KindSport,
		Name: "City Marathon",
		Date: activityTestNow.AddDate(0, 0, 7),
		Participation: domain.Participation{
			MaximumParticipants: maxSpots,
			TotalParticipants:   taken,
		},
	}
}

func registrationDraft(activityID uint, quantity int) domain.Draft {
	return domain.Draft{
		ID:         "draft-1",
		ActivityID: activityID,
		Kind:       domain.KindSport,
		Quantity:   quantity,
		TotalAmount: float64(quantity) * 25,
		Billing: domain.BillingInfo{
			FirstName: "Mia",
			LastName:  "Chen",
			Email:     "mia@example.com",
			Phone:     "555-0102",
		},
		Attendees: []domain.Attendee{
			{Name: "Mia Chen", IDNumber: "M001", Age: 27},
			{Name: "Leo Chen", IDNumber: "L002", Age: 30},
		},
	}
}

func newParticipantService(repo *stubParticipantRepo, activityRepo *stubActivityRepo) *ParticipantService {
	svc := NewParticipantService(repo, activityRepo)
	svc.now = func() time.Time { return activityTestNow }

	return svc
}

func TestParticipantService_Register(t *testing.T) {
	repo := &stubParticipantRepo{}
	activityRepo := newStubActivityRepo(openActivity(42, 100, 10))
	svc := newParticipantService(repo, activityRepo)

	created, err := svc.Register(context.Background(), registrationDraft(42, 2))
	require.NoError(t, err)

	assert.NotEmpty(t, created.OrderID)
	assert.Equal(t, uint(42), created.ActivityID)
	assert.Equal(t, 2, created.NumberOfTickets)
	require.Len(t, created.TicketNumbers, 2)
	assert.Contains(t, created.TicketNumbers[0], created.OrderID)
	assert.Equal(t, activityTestNow, created.PaymentDate)

	activity, err := activityRepo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 12, activity.Participation.TotalParticipants)
	assert.Equal(t, 2, activity.Participation.ConfirmedParticipants)
}

func TestParticipantService_Register_UnknownActivity(t *testing.T) {
	svc := newParticipantService(&stubParticipantRepo{}, newStubActivityRepo())

	_, err := svc.Register(context.Background(), registrationDraft(42, 2))
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestParticipantService_Register_SoldOut(t *testing.T) {
	activityRepo := newStubActivityRepo(openActivity(42, 10, 10))
	svc := newParticipantService(&stubParticipantRepo{}, activityRepo)

	_, err := svc.Register(context.Background(), registrationDraft(42, 1))
	assert.ErrorIs(t, err, ErrNotEnoughSpots)
}

func TestParticipantService_Register_NotEnoughSpots(t *testing.T) {
	activityRepo := newStubActivityRepo(openActivity(42, 10, 9))
	svc := newParticipantService(&stubParticipantRepo{}, activityRepo)

	_, err := svc.Register(context.Background(), registrationDraft(42, 2))
	assert.ErrorIs(t, err, ErrNotEnoughSpots)
}

func TestParticipantService_Register_Closed(t *testing.T) {
	past := openActivity(42, 100, 10)
	past.Date = activityTestNow.AddDate(0, 0, -7)
	svc := newParticipantService(&stubParticipantRepo{}, newStubActivityRepo(past))

	_, err := svc.Register(context.Background(), registrationDraft(42, 1))
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestParticipantService_Register_Cancelled(t *testing.T) {
	cancelled := openActivity(42, 100, 10)
	cancelled.ManualStatus = domain.StatusCancelled
	svc := newParticipantService(&stubParticipantRepo{}, newStubActivityRepo(cancelled))

	_, err := svc.Register(context.Background(), registrationDraft(42, 1))
	assert.ErrorIs(t, err, ErrRegistrationClosed)
}

func TestParticipantService_GetByOrderID(t *testing.T) {
	repo := &stubParticipantRepo{}
	svc := newParticipantService(repo, newStubActivityRepo(openActivity(42, 100, 0)))

	created, err := svc.Register(context.Background(), registrationDraft(42, 1))
	require.NoError(t, err)

	got, err := svc.GetByOrderID(context.Background(), created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByOrderID(context.Background(), "ORD-MISSING")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
