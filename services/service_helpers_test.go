package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// each test gets its own named in-memory database; cache=shared keeps
// it alive across the pool's connections
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.ShippingProfile{}, &entity.PaymentMethod{},
		&entity.Category{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderDocument{},
		&entity.LogFile{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  strings.SplitN(email, "@", 2)[0],
		Role:      entity.RoleUser,
		IsActive:  true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, price float64, active bool) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:     strings.ReplaceAll(slug, "-", " "),
		Slug:     slug,
		Price:    price,
		Stock:    10,
		IsActive: active,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func newTestOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewCartRepository(db))
}

func newTestCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewProductRepository(db))
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		"test-secret", time.Hour)
}
