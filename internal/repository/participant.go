package repository

import (
	"context"
	"fmt"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/repository/dao"
)

var (
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrOrderIDExists       = dao.ErrOrderIDExists
)

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	FindByOrderID(ctx context.Context, orderID string) (dao.Participant, error)
	FindByActivityID(ctx context.Context, activityID uint) ([]dao.Participant, error)
	FindByEmail(ctx context.Context, email string) ([]dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByOrderID(ctx context.Context, orderID string) (domain.Participant, error) {
	found, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByOrderID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindByActivityID(ctx context.Context, activityID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindByActivityID(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByActivityID -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.daoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) ([]domain.Participant, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.daoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) domainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:              p.ID,
		OrderID:         p.OrderID,
		ActivityID:      p.ActivityID,
		Kind:            string(p.Kind),
		FirstName:       p.Billing.FirstName,
		LastName:        p.Billing.LastName,
		Email:           p.Billing.Email,
		Phone:           p.Billing.Phone,
		Attendees:       r.attendeesDomainToDao(p.Attendees),
		TeamName:        p.TeamName,
		Amount:          p.Amount,
		NumberOfTickets: p.NumberOfTickets,
		TicketNumbers:   p.TicketNumbers,
		PaymentDate:     p.PaymentDate,
		CreatedAt:       p.CreatedAt,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:         p.ID,
		OrderID:    p.OrderID,
		ActivityID: p.ActivityID,
		Kind:       domain.Kind(p.Kind),
		Billing: domain.BillingInfo{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
		},
		Attendees:       r.attendeesDaoToDomain(p.Attendees),
		TeamName:        p.TeamName,
		Amount:          p.Amount,
		NumberOfTickets: p.NumberOfTickets,
		TicketNumbers:   p.TicketNumbers,
		PaymentDate:     p.PaymentDate,
		CreatedAt:       p.CreatedAt,
	}
}

func (r *ParticipantRepository) attendeesDomainToDao(attendees []domain.Attendee) []dao.Attendee {
	if len(attendees) == 0 {
		return nil
	}

	daoAttendees := make([]dao.Attendee, len(attendees))
	for i, a := range attendees {
		daoAttendees[i] = dao.Attendee{
			Name:     a.Name,
			IDNumber: a.IDNumber,
			Age:      a.Age,
			Gender:   a.Gender,
			Email:    a.Email,
			TeamName: a.TeamName,
		}
	}

	return daoAttendees
}

func (r *ParticipantRepository) attendeesDaoToDomain(attendees []dao.Attendee) []domain.Attendee {
	if len(attendees) == 0 {
		return nil
	}

	domainAttendees := make([]domain.Attendee, len(attendees))
	for i, a := range attendees {
		domainAttendees[i] = domain.Attendee{
			Name:     a.Name,
			IDNumber: a.IDNumber,
			Age:      a.Age,
			Gender:   a.Gender,
			Email:    a.Email,
			TeamName: a.TeamName,
		}
	}

	return domainAttendees
}
