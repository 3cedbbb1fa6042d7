package service

import (
	"context"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"go.uber.org/zap"
)

// ClientService owns CRUD for clients
type ClientService struct {
	store  store.Store
	cache  BookingViewCache
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewClientService creates a new client service. cache may be nil.
func NewClientService(st store.Store, cache BookingViewCache, events *broker.EventPublisher) *ClientService {
	return &ClientService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// ClientRequest carries the full field set for create and update
type ClientRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contact_info"`
}

func (r *ClientRequest) toModel() *models.Client {
	return &models.Client{
		Name:        r.Name,
		ContactInfo: r.ContactInfo,
	}
}

// List returns all clients ordered by id
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	clients, err := s.store.ListClients(ctx)
	return clients, wrapStorage("list clients", err)
}

// Get returns one client
func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.store.GetClient(ctx, id)
	if err != nil {
		return nil, wrapStorage("get client", err)
	}
	return client, nil
}

// Create stores a new client and returns it with the assigned id
func (s *ClientService) Create(ctx context.Context, req *ClientRequest) (*models.Client, error) {
	client := req.toModel()
	if err := s.store.CreateClient(ctx, client); err != nil {
		return nil, wrapStorage("create client", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityClient, "create").Inc()
	s.logger.Info("Client created", zap.Int64("id", client.ID))
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityCreated, models.EntityClient, client.ID)
	invalidateBookingView(ctx, s.cache, s.logger)
	return client, nil
}

// Update replaces all mutable fields of a client
func (s *ClientService) Update(ctx context.Context, id int64, req *ClientRequest) (*models.Client, error) {
	client := req.toModel()
	client.ID = id
	if err := s.store.UpdateClient(ctx, client); err != nil {
		return nil, wrapStorage("update client", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityClient, "update").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityUpdated, models.EntityClient, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return client, nil
}

// Delete removes a client. Bookings referencing it keep their raw client_id
// and show placeholder client fields in the detailed view.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteClient(ctx, id); err != nil {
		return wrapStorage("delete client", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityClient, "delete").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityDeleted, models.EntityClient, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return nil
}
