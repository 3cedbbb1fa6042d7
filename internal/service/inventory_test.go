package service

import (
	"context"
	"testing"

	"guesthouse-service/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(v int) *int { return &v }

func ptrInt64(v int64) *int64 { return &v }

func ptrDec(v decimal.Decimal) *decimal.Decimal { return &v }

func newInventoryService() *InventoryService {
	return NewInventoryService(store.NewMemStore(), nil)
}

func sampleItemRequest() *InventoryItemRequest {
	return &InventoryItemRequest{
		Name:         "Shampoo",
		CategoryID:   ptrInt64(2),
		Quantity:     ptrInt(0),
		Unit:         "bottle",
		CostPrice:    ptrDec(decimal.NewFromFloat(1.25)),
		SellingPrice: ptrDec(decimal.NewFromFloat(2.50)),
		ReorderLevel: ptrInt(5),
	}
}

func TestInventoryCreateThenGet(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleItemRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", got.Name)
	assert.Equal(t, int64(2), got.CategoryID)
	// zero quantity passed the presence check and survived the round trip
	assert.Equal(t, 0, got.Quantity)
	assert.True(t, got.CostPrice.Equal(decimal.NewFromFloat(1.25)))
	assert.True(t, got.SellingPrice.Equal(decimal.NewFromFloat(2.50)))
}

func TestInventoryUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	_, err := svc.Update(ctx, 42, sampleItemRequest())
	assert.ErrorIs(t, err, store.ErrNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryUpdateReplacesFields(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleItemRequest())
	require.NoError(t, err)

	req := sampleItemRequest()
	req.Name = "Conditioner"
	req.Quantity = ptrInt(12)

	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Conditioner", got.Name)
	assert.Equal(t, 12, got.Quantity)
}

func TestInventoryDeleteThenGetReturnsNotFound(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleItemRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), store.ErrNotFound)
}

func TestInventoryListGrowsAndShrinksByOne(t *testing.T) {
	svc := newInventoryService()
	ctx := context.Background()

	items, err := svc.List(ctx)
	require.NoError(t, err)
	before := len(items)

	created, err := svc.Create(ctx, sampleItemRequest())
	require.NoError(t, err)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, before+1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, before)
}
