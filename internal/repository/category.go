package repository

import (
	"context"
	"fmt"

	"github.com/sellandashawn/fignite/internal/domain"
	"github.com/sellandashawn/fignite/internal/repository/dao"
)

var (
	ErrCategoryNotFound   = dao.ErrCategoryNotFound
	ErrCategoryNameExists = dao.ErrCategoryNameExists
)

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, id string) (dao.Category, error)
	FindAll(ctx context.Context) ([]dao.Category, error)
	FindByType(ctx context.Context, categoryType string) ([]dao.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CategoryRepository) FindByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	found, err := r.dao.FindByType(ctx, string(categoryType))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByType -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CategoryRepository) domainToDao(c domain.Category) dao.Category {
	return dao.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Type:        string(c.Type),
		CreatedAt:   c.CreatedAt,
	}
}

func (r *CategoryRepository) daoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Type:        domain.CategoryType(c.Type),
		CreatedAt:   c.CreatedAt,
	}
}

func (r *CategoryRepository) daosToDomain(daoCategories []dao.Category) []domain.Category {
	categories := make([]domain.Category, len(daoCategories))
	for i, c := range daoCategories {
		categories[i] = r.daoToDomain(c)
	}

	return categories
}
