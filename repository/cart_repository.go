package repository

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the user's cart singleton, creating it lazily on
// first access.
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	c, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	err = r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id")
	}).Preload("Items.Product").First(c, c.ID).Error
	return c, err
}

// AddItem merges a duplicate product into the existing line with an
// atomic increment; two concurrent adds cannot lose an update.
func (r *CartRepository) AddItem(tx *gorm.DB, cartID, productID uint, qty int) error {
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(&entity.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}).Error
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (r *CartRepository) SetQuantity(tx *gorm.DB, cartID, productID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, cartID, productID)
	}
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		UpdateColumn("quantity", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, productID uint) error {
	return tx.Unscoped().
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&entity.CartItem{}).Error
}

// ClearItems empties the cart; the cart row itself persists.
func (r *CartRepository) ClearItems(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
