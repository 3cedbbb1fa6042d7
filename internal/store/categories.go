package store

import (
	"context"
	"database/sql"

	"guesthouse-service/internal/models"
)

// ListCategories retrieves all categories ordered by id
func (s *Postgres) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY id")
	return categories, err
}

// GetCategory retrieves a category by ID
func (s *Postgres) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a category and fills the assigned id and timestamps
func (s *Postgres) CreateCategory(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, category, query, category.Name)
}

// UpdateCategory replaces all mutable fields of a category
func (s *Postgres) UpdateCategory(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING created_at, updated_at`

	err := s.db.GetContext(ctx, category, query, category.Name, category.ID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// DeleteCategory removes a category by ID
func (s *Postgres) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return rowsAffected(res, err)
}
