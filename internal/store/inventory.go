package store

import (
	"context"
	"database/sql"

	"guesthouse-service/internal/models"
)

// ListInventoryItems retrieves all inventory items ordered by id
func (s *Postgres) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	err := s.db.SelectContext(ctx, &items, "SELECT * FROM inventory_items ORDER BY id")
	return items, err
}

// GetInventoryItem retrieves an inventory item by ID
func (s *Postgres) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.db.GetContext(ctx, &item, "SELECT * FROM inventory_items WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateInventoryItem inserts an item and fills the assigned id and timestamps
func (s *Postgres) CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (name, category_id, quantity, unit, cost_price, selling_price, reorder_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, item, query,
		item.Name, item.CategoryID, item.Quantity, item.Unit,
		item.CostPrice, item.SellingPrice, item.ReorderLevel)
}

// UpdateInventoryItem replaces all mutable fields of an item
func (s *Postgres) UpdateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, category_id = $2, quantity = $3, unit = $4,
		    cost_price = $5, selling_price = $6, reorder_level = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at`

	err := s.db.GetContext(ctx, item, query,
		item.Name, item.CategoryID, item.Quantity, item.Unit,
		item.CostPrice, item.SellingPrice, item.ReorderLevel, item.ID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// DeleteInventoryItem removes an item by ID
func (s *Postgres) DeleteInventoryItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
	return rowsAffected(res, err)
}
