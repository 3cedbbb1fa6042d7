package service

import (
	"context"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InventoryService owns CRUD for inventory items
type InventoryService struct {
	store  store.Store
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(st store.Store, events *broker.EventPublisher) *InventoryService {
	return &InventoryService{
		store:  st,
		events: events,
		logger: util.GetLogger(),
	}
}

// InventoryItemRequest carries the full field set for create and update.
// Numeric fields are pointers so a literal 0 passes the presence check.
type InventoryItemRequest struct {
	Name         string           `json:"name" binding:"required"`
	CategoryID   *int64           `json:"category_id" binding:"required"`
	Quantity     *int             `json:"quantity" binding:"required"`
	Unit         string           `json:"unit" binding:"required"`
	CostPrice    *decimal.Decimal `json:"cost_price" binding:"required"`
	SellingPrice *decimal.Decimal `json:"selling_price" binding:"required"`
	ReorderLevel *int             `json:"reorder_level" binding:"required"`
}

func (r *InventoryItemRequest) toModel() *models.InventoryItem {
	return &models.InventoryItem{
		Name:         r.Name,
		CategoryID:   *r.CategoryID,
		Quantity:     *r.Quantity,
		Unit:         r.Unit,
		CostPrice:    *r.CostPrice,
		SellingPrice: *r.SellingPrice,
		ReorderLevel: *r.ReorderLevel,
	}
}

// List returns all inventory items ordered by id
func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.store.ListInventoryItems(ctx)
	return items, wrapStorage("list inventory items", err)
}

// Get returns one inventory item
func (s *InventoryService) Get(ctx context.Context, id int64) (*models.InventoryItem, error) {
	item, err := s.store.GetInventoryItem(ctx, id)
	if err != nil {
		return nil, wrapStorage("get inventory item", err)
	}
	return item, nil
}

// Create stores a new inventory item and returns it with the assigned id
func (s *InventoryService) Create(ctx context.Context, req *InventoryItemRequest) (*models.InventoryItem, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.Create")
	defer span.End()

	item := req.toModel()
	if err := s.store.CreateInventoryItem(ctx, item); err != nil {
		return nil, wrapStorage("create inventory item", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityInventoryItem, "create").Inc()
	s.logger.Info("Inventory item created", zap.Int64("id", item.ID))
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityCreated, models.EntityInventoryItem, item.ID)
	return item, nil
}

// Update replaces all mutable fields of an inventory item
func (s *InventoryService) Update(ctx context.Context, id int64, req *InventoryItemRequest) (*models.InventoryItem, error) {
	item := req.toModel()
	item.ID = id
	if err := s.store.UpdateInventoryItem(ctx, item); err != nil {
		return nil, wrapStorage("update inventory item", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityInventoryItem, "update").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityUpdated, models.EntityInventoryItem, id)
	return item, nil
}

// Delete removes an inventory item
func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteInventoryItem(ctx, id); err != nil {
		return wrapStorage("delete inventory item", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityInventoryItem, "delete").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityDeleted, models.EntityInventoryItem, id)
	return nil
}
