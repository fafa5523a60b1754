package services

import (
	"testing"

	"github.com/MarcoT95/static/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderUsesServerPrices(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestOrderService(db)

	// the client-supplied unit price is a lie and must be ignored
	order, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{ProductID: product.ID, Quantity: 2, UnitPrice: 0.01}},
	})
	require.NoError(t, err)

	assert.InDelta(t, 39.98, order.Total, 1e-9)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 19.99, order.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrderClearsCart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)

	cartSvc := newTestCartService(db)
	_, err := cartSvc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	svc := newTestOrderService(db)
	_, err = svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	cart, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateOrderRejectsInactiveProductAtomically(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	active := createTestProduct(t, db, "logo-tee", 19.99, true)
	inactive := createTestProduct(t, db, "old-tee", 9.99, false)
	svc := newTestOrderService(db)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{
			{ProductID: active.ID, Quantity: 1},
			{ProductID: inactive.ID, Quantity: 1},
		},
	})
	require.Error(t, err)

	var invalid *InvalidProductsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []uint{inactive.ID}, invalid.IDs)
	assert.Contains(t, err.Error(), "invalid or unavailable products")

	// whole-or-nothing: no order or item row may exist
	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	svc := newTestOrderService(db)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{ProductID: 999, Quantity: 1}},
	})
	var invalid *InvalidProductsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []uint{999}, invalid.IDs)
}

func TestCreateOrderRejectsEmptyAndMalformedLines(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestOrderService(db)

	_, err := svc.Create(user.ID, &CreateOrderIn{})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{ProductID: product.ID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidOrderLines)

	_, err = svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{{ProductID: 0, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidOrderLines)
}

func TestCreateOrderMergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 10.00, true)
	svc := newTestOrderService(db)

	// duplicate ids are deduped for validation but each line still counts
	order, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderLineIn{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.00, order.Total, 1e-9)
}

func TestCreateDraftKeepsCartAndSnapshot(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)

	cartSvc := newTestCartService(db)
	_, err := cartSvc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	svc := newTestOrderService(db)
	order, err := svc.CreateDraft(user.ID, &DraftOrderIn{
		CreateOrderIn: CreateOrderIn{
			Items: []OrderLineIn{{ProductID: product.ID, Quantity: 1}},
		},
		CheckoutData: map[string]any{"email": "buyer@example.com", "paymentMethod": "card"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Contains(t, string(order.CheckoutData), "buyer@example.com")

	// drafts never touch the cart
	cart, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 5.00, true)
	svc := newTestOrderService(db)

	first, err := svc.Create(user.ID, &CreateOrderIn{Items: []OrderLineIn{{ProductID: product.ID, Quantity: 1}}})
	require.NoError(t, err)
	second, err := svc.Create(user.ID, &CreateOrderIn{Items: []OrderLineIn{{ProductID: product.ID, Quantity: 2}}})
	require.NoError(t, err)

	orders, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// created within the same timestamp tick is fine either way as long
	// as both are present
	ids := []uint{orders[0].ID, orders[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestOrderDetailScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	product := createTestProduct(t, db, "logo-tee", 5.00, true)
	svc := newTestOrderService(db)

	order, err := svc.Create(owner.ID, &CreateOrderIn{Items: []OrderLineIn{{ProductID: product.ID, Quantity: 1}}})
	require.NoError(t, err)

	_, err = svc.DetailForUser(other.ID, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
