package repository

import (
	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

type ProductFilter struct {
	CategoryID uint
	Featured   *bool
}

// List returns active products only; soft-deleted rows never surface.
func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, error) {
	q := r.DB.Preload("Category").Where("is_active = ?", true)
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}

	var products []entity.Product
	err := q.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindActive(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindActiveBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindActiveByIDs backs order validation; inactive products are treated
// the same as missing ones.
func (r *ProductRepository) FindActiveByIDs(ids []uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

// Deactivate is the only delete this table knows.
func (r *ProductRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).
		Update("is_active", false).Error
}
