package services

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

type CreateProductIn struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"min=0"`
	Images      datatypes.JSON `json:"images"`
	Stock       int            `json:"stock" binding:"min=0"`
	Featured    bool           `json:"featured"`
	CategoryID  *uint          `json:"categoryId"`
}

type UpdateProductIn struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price" binding:"omitempty,min=0"`
	Images      *datatypes.JSON `json:"images"`
	Stock       *int            `json:"stock" binding:"omitempty,min=0"`
	Featured    *bool           `json:"featured"`
	CategoryID  *uint           `json:"categoryId"`
	IsActive    *bool           `json:"isActive"`
}

func (s *ProductService) List(categoryID uint, featured *bool) ([]entity.Product, error) {
	return s.Repo.List(repository.ProductFilter{CategoryID: categoryID, Featured: featured})
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.Repo.FindActive(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) GetBySlug(slug string) (*entity.Product, error) {
	p, err := s.Repo.FindActiveBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) Create(in *CreateProductIn) (*entity.Product, error) {
	p := &entity.Product{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		Images:      in.Images,
		Stock:       in.Stock,
		Featured:    in.Featured,
		IsActive:    true,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(id uint, in *UpdateProductIn) (*entity.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes: the row stays for order history.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Deactivate(id)
}
