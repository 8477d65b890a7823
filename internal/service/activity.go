package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/listing"
	"github.com/sellandashawn/fignite/internal/repository"
)

var (
	ErrActivityNotFound    = repository.ErrActivityNotFound
	ErrInvalidManualStatus = errors.New("manual status must be cancelled or postponed")
)

type ActivityRepository interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
	FindByKind(ctx context.Context, kind domain.Kind) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, id uint) error
	IncrementParticipants(ctx context.Context, id uint, confirmed, total int) error
}

type ActivityCategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
}

type ActivityService struct {
	repo         ActivityRepository
	categoryRepo ActivityCategoryRepository
	now          func() time.Time
}

func NewActivityService(repo ActivityRepository, categoryRepo ActivityCategoryRepository) *ActivityService {
	return &ActivityService{
		repo:         repo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// List runs the storefront query over every activity of one kind:
// search, category and status filters, sorting and pagination.
func (s *ActivityService) List(ctx context.Context, kind domain.Kind, params listing.Params) (listing.Result, error) {
	activities, err := s.repo.FindByKind(ctx, kind)
	if err != nil {
		return listing.Result{}, fmt.Errorf("s.repo.FindByKind -> %w", err)
	}

	return listing.Query(activities, params, s.Categories(ctx), s.now()), nil
}

// ListByCategory is the category landing page query, a plain listing
// narrowed to one resolved category name.
func (s *ActivityService) ListByCategory(ctx context.Context, kind domain.Kind, category string, params listing.Params) (listing.Result, error) {
	params.Category = category

	return s.List(ctx, kind, params)
}

// Categories exposes the category list the listing endpoints resolve
// display names against. A failed lookup degrades to no categories, so
// listings still render with "N/A" names instead of failing outright.
func (s *ActivityService) Categories(ctx context.Context) []domain.Category {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		zap.L().Warn("categories unavailable, listings fall back to N/A names", zap.Error(err))
		return nil
	}

	return categories
}

func (s *ActivityService) GetByID(ctx context.Context, kind domain.Kind, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	// An event id requested through the sports route is not found, the
	// two routes never leak into each other.
	if activity.Kind != kind {
		return domain.Activity{}, ErrActivityNotFound
	}

	return activity, nil
}

func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := validateManualStatus(activity.ManualStatus); err != nil {
		return domain.Activity{}, err
	}

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	if err := validateManualStatus(activity.ManualStatus); err != nil {
		return domain.Activity{}, err
	}

	existing, err := s.GetByID(ctx, activity.Kind, activity.ID)
	if err != nil {
		return domain.Activity{}, err
	}

	// Registration counters are owned by the checkout path, an admin
	// edit never resets them.
	activity.Participation.ConfirmedParticipants = existing.Participation.ConfirmedParticipants
	activity.Participation.TotalParticipants = existing.Participation.TotalParticipants
	activity.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, kind domain.Kind, id uint) error {
	if _, err := s.GetByID(ctx, kind, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func validateManualStatus(status domain.Status) error {
	if status == "" || status.IsManual() {
		return nil
	}

	return ErrInvalidManualStatus
}
