package repository

import (
	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Preload("Products", "is_active = ?", true).Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Preload("Products", "is_active = ?", true).First(&cat, id).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Save(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Category{}, id).Error
}
