package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrRegistrationClosed  = errors.New("registration is closed for this activity")
	ErrNotEnoughSpots      = errors.New("not enough spots left")
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByOrderID(ctx context.Context, orderID string) (domain.Participant, error)
	FindByActivityID(ctx context.Context, activityID uint) ([]domain.Participant, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Participant, error)
}

type ParticipantActivityRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	IncrementParticipants(ctx context.Context, id uint, confirmed, total int) error
}

type ParticipantService struct {
	repo         ParticipantRepository
	activityRepo ParticipantActivityRepository
	now          func() time.Time
}

func NewParticipantService(repo ParticipantRepository, activityRepo ParticipantActivityRepository) *ParticipantService {
	return &ParticipantService{
		repo:         repo,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

// Register turns a paid checkout draft into a participant record and
// bumps the activity's registration counters.
func (s *ParticipantService) Register(ctx context.Context, draft domain.Draft) (domain.Participant, error) {
	activity, err := s.activityRepo.FindByID(ctx, draft.ActivityID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.activityRepo.FindByID -> %w", err)
	}

	now := s.now()
	if !activity.CanRegister(now) {
		if activity.Participation.AvailableSpots() < 1 {
			return domain.Participant{}, ErrNotEnoughSpots
		}

		return domain.Participant{}, ErrRegistrationClosed
	}

	if draft.Quantity > activity.Participation.AvailableSpots() {
		return domain.Participant{}, ErrNotEnoughSpots
	}

	orderID := newOrderID()
	participant := domain.Participant{
		OrderID:         orderID,
		ActivityID:      activity.ID,
		Kind:            activity.Kind,
		Billing:         draft.Billing,
		Attendees:       draft.Attendees,
		TeamName:        draft.TeamName,
		Amount:          draft.TotalAmount,
		NumberOfTickets: draft.Quantity,
		TicketNumbers:   newTicketNumbers(orderID, draft.Quantity),
		PaymentDate:     now,
	}

	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	err = s.activityRepo.IncrementParticipants(ctx, activity.ID, draft.Quantity, draft.Quantity)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.activityRepo.IncrementParticipants -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) GetByOrderID(ctx context.Context, orderID string) (domain.Participant, error) {
	participant, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByOrderID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) ListByActivity(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	participants, err := s.repo.FindByActivityID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByActivityID -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) ListByEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	participants, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return participants, nil
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func newTicketNumbers(orderID string, quantity int) []string {
	numbers := make([]string, quantity)
	for i := range numbers {
		numbers[i] = fmt.Sprintf("%s-T%03d", orderID, i+1)
	}

	return numbers
}
