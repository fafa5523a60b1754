package services

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	cat, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	return cat, err
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Update(id uint, in *CategoryIn) (*entity.Category, error) {
	cat, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	cat.Name = in.Name
	cat.Slug = in.Slug
	cat.Description = in.Description
	cat.ImageURL = in.ImageURL
	if err := s.Repo.Save(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Deleting a category leaves its products in place; the category link
// is cleared, not cascaded.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
