package repository

import (
	"context"
	"fmt"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
	FindByKind(ctx context.Context, kind string) ([]dao.Activity, error)
	Update(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	Delete(ctx context.Context, id uint) error
	IncrementParticipants(ctx context.Context, id uint, confirmed, total int) error
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ActivityRepository) FindByKind(ctx context.Context, kind domain.Kind) ([]domain.Activity, error) {
	found, err := r.dao.FindByKind(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByKind -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(activity))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) IncrementParticipants(ctx context.Context, id uint, confirmed, total int) error {
	if err := r.dao.IncrementParticipants(ctx, id, confirmed, total); err != nil {
		return fmt.Errorf("r.dao.IncrementParticipants -> %w", err)
	}

	return nil
}

func (r *ActivityRepository) domainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:                    a.ID,
		Kind:                  string(a.Kind),
		Name:                  a.Name,
		Venue:                 a.Venue,
		Date:                  a.Date,
		Time:                  a.Time,
		Category:              a.Category.Raw(),
		Description:           a.Description,
		RegistrationFee:       a.RegistrationFee,
		TeamSize:              a.TeamSize,
		Schedule:              r.scheduleDomainToDao(a.Schedule),
		Image:                 a.Image,
		ManualStatus:          string(a.ManualStatus),
		MaximumParticipants:   a.Participation.MaximumParticipants,
		ConfirmedParticipants: a.Participation.ConfirmedParticipants,
		TotalParticipants:     a.Participation.TotalParticipants,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:           a.ID,
		Kind:         domain.Kind(a.Kind),
		Name:         a.Name,
		Venue:        a.Venue,
		Date:         a.Date,
		Time:         a.Time,
		Category:     domain.CategoryRaw(a.Category),
		Description:  a.Description,
		RegistrationFee: a.RegistrationFee,
		TeamSize:        a.TeamSize,
		Schedule:        r.scheduleDaoToDomain(a.Schedule),
		Image:           a.Image,
		ManualStatus:    domain.Status(a.ManualStatus),
		Participation: domain.Participation{
			MaximumParticipants:   a.MaximumParticipants,
			ConfirmedParticipants: a.ConfirmedParticipants,
			TotalParticipants:     a.TotalParticipants,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *ActivityRepository) daosToDomain(daoActivities []dao.Activity) []domain.Activity {
	activities := make([]domain.Activity, len(daoActivities))
	for i, a := range daoActivities {
		activities[i] = r.daoToDomain(a)
	}

	return activities
}

func (r *ActivityRepository) scheduleDomainToDao(items []domain.ScheduleItem) []dao.ScheduleItem {
	if len(items) == 0 {
		return nil
	}

	daoItems := make([]dao.ScheduleItem, len(items))
	for i, item := range items {
		daoItems[i] = dao.ScheduleItem{
			Time:     item.Time,
			Activity: item.Activity,
		}
	}

	return daoItems
}

func (r *ActivityRepository) scheduleDaoToDomain(items []dao.ScheduleItem) []domain.ScheduleItem {
	if len(items) == 0 {
		return nil
	}

	domainItems := make([]domain.ScheduleItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.ScheduleItem{
			Time:     item.Time,
			Activity: item.Activity,
		}
	}

	return domainItems
}
