package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/repository"
)

var (
	ErrCategoryNotFound   = repository.ErrCategoryNotFound
	ErrCategoryNameExists = repository.ErrCategoryNameExists
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id string) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

func (s *CategoryService) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return category, nil
}

// List returns every category, optionally narrowed to one type.
func (s *CategoryService) List(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	if categoryType == "" {
		categories, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
		}

		return categories, nil
	}

	categories, err := s.repo.FindByType(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByType -> %w", err)
	}

	return categories, nil
}

// ResolveName maps whatever category reference an activity carries to a
// display name, falling back to "N/A" when nothing matches.
func (s *CategoryService) ResolveName(ctx context.Context, ref domain.CategoryRef) (string, error) {
	known, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.ResolveCategoryName(ref, known), nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
