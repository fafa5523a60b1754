package services

import (
	"testing"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPreloadsActiveProductsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	cat, err := svc.Create(&CategoryIn{Name: "Apparel", Slug: "apparel"})
	require.NoError(t, err)

	active := createTestProduct(t, db, "logo-tee", 19.99, true)
	retired := createTestProduct(t, db, "old-tee", 9.99, false)
	require.NoError(t, db.Model(active).Update("category_id", cat.ID).Error)
	require.NoError(t, db.Model(retired).Update("category_id", cat.ID).Error)

	got, err := svc.Get(cat.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "logo-tee", got.Products[0].Slug)
}

func TestCategoryDeleteKeepsProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	cat, err := svc.Create(&CategoryIn{Name: "Apparel", Slug: "apparel"})
	require.NoError(t, err)
	product := createTestProduct(t, db, "logo-tee", 19.99, true)
	require.NoError(t, db.Model(product).Update("category_id", cat.ID).Error)

	require.NoError(t, svc.Delete(cat.ID))

	_, err = svc.Get(cat.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	var still entity.Product
	require.NoError(t, db.First(&still, product.ID).Error)
}

func TestCategoryUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	_, err := svc.Update(99, &CategoryIn{Name: "Posters", Slug: "posters"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
