package services

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("product not in cart")

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemIn struct {
	Quantity int `json:"quantity"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetWithItems(userID)
}

// Add merges into an existing line; a brand-new product gets its own.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	if _, err := s.ProductRepo.FindActive(in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AddItem(tx, cart.ID, in.ProductID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) UpdateItem(userID, productID uint, qty int) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetQuantity(tx, cart.ID, productID, qty)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) RemoveItem(userID, productID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, cart.ID, productID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearItems(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}
