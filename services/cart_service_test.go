package services

import (
	"testing"

	"github.com/MarcoT95/static/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestCartService(db)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestCartService(db)

	cart, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddRejectsInactiveProduct(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	inactive := createTestProduct(t, db, "old-tee", 9.99, false)
	svc := newTestCartService(db)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: inactive.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestZeroQuantityRemovesLineCartSurvives(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestCartService(db)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.UpdateItem(user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	var carts int64
	db.Model(&entity.Cart{}).Where("user_id = ?", user.ID).Count(&carts)
	assert.EqualValues(t, 1, carts)
}

func TestUpdateUnknownLine(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	svc := newTestCartService(db)

	_, err := svc.UpdateItem(user.ID, 42, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestGetCreatesCartLazily(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	svc := newTestCartService(db)

	cart, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, cart.UserID)
	assert.Empty(t, cart.Items)

	// second access reuses the singleton
	again, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestClearKeepsCartRow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	svc := newTestCartService(db)

	_, err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.Clear(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	var carts int64
	db.Model(&entity.Cart{}).Count(&carts)
	assert.EqualValues(t, 1, carts)
}
