package store

import (
	"context"
	"database/sql"

	"guesthouse-service/internal/models"
)

// ListClients retrieves all clients ordered by id
func (s *Postgres) ListClients(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := s.db.SelectContext(ctx, &clients, "SELECT * FROM clients ORDER BY id")
	return clients, err
}

// GetClient retrieves a client by ID
func (s *Postgres) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	err := s.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateClient inserts a client and fills the assigned id and timestamps
func (s *Postgres) CreateClient(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (name, contact_info)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, client, query, client.Name, client.ContactInfo)
}

// UpdateClient replaces all mutable fields of a client
func (s *Postgres) UpdateClient(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $1, contact_info = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at`

	err := s.db.GetContext(ctx, client, query, client.Name, client.ContactInfo, client.ID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// DeleteClient removes a client by ID
func (s *Postgres) DeleteClient(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	return rowsAffected(res, err)
}
