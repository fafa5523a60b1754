package repository

import (
	"errors"

	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

// ProfileRepository covers the user's shipping profile and saved
// payment methods.
type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindShipping(userID uint) (*entity.ShippingProfile, error) {
	var p entity.ShippingProfile
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertShipping keeps the at-most-one-profile-per-user invariant.
func (r *ProfileRepository) UpsertShipping(p *entity.ShippingProfile) error {
	var exist entity.ShippingProfile
	err := r.DB.Where("user_id = ?", p.UserID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(p).Error
	}
	if err != nil {
		return err
	}
	p.ID = exist.ID
	p.CreatedAt = exist.CreatedAt
	return r.DB.Save(p).Error
}

func (r *ProfileRepository) ListPaymentMethods(userID uint) ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, updated_at DESC").
		Find(&methods).Error
	return methods, err
}

// ReplacePaymentMethods swaps the stored set wholesale: delete then
// insert, in one transaction. A merge is never attempted.
func (r *ProfileRepository) ReplacePaymentMethods(userID uint, methods []entity.PaymentMethod) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).
			Delete(&entity.PaymentMethod{}).Error; err != nil {
			return err
		}
		for i := range methods {
			methods[i].UserID = userID
			if err := tx.Create(&methods[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
