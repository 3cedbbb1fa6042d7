package service

import (
	"context"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"go.uber.org/zap"
)

// CategoryService owns CRUD for inventory categories
type CategoryService struct {
	store  store.Store
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(st store.Store, events *broker.EventPublisher) *CategoryService {
	return &CategoryService{
		store:  st,
		events: events,
		logger: util.GetLogger(),
	}
}

// CategoryRequest carries the full field set for create and update
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List returns all categories ordered by id
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	return categories, wrapStorage("list categories", err)
}

// Get returns one category
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, wrapStorage("get category", err)
	}
	return category, nil
}

// Create stores a new category and returns it with the assigned id
func (s *CategoryService) Create(ctx context.Context, req *CategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, wrapStorage("create category", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityCategory, "create").Inc()
	s.logger.Info("Category created", zap.Int64("id", category.ID))
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityCreated, models.EntityCategory, category.ID)
	return category, nil
}

// Update replaces all mutable fields of a category
func (s *CategoryService) Update(ctx context.Context, id int64, req *CategoryRequest) (*models.Category, error) {
	category := &models.Category{ID: id, Name: req.Name}
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, wrapStorage("update category", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityCategory, "update").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityUpdated, models.EntityCategory, id)
	return category, nil
}

// Delete removes a category. Inventory items keep their raw category_id;
// referential integrity is the store's concern, not the application's.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return wrapStorage("delete category", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityCategory, "delete").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityDeleted, models.EntityCategory, id)
	return nil
}
