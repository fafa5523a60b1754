package configs

import (
	"log"

	"github.com/MarcoT95/static/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
		IsActive:  true,
	}
	return db.Create(&admin).Error
}

// SeedCatalog gives fresh installs something to list.
func SeedCatalog() error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	apparel := entity.Category{Name: "Apparel", Slug: "apparel", Description: "Tees, hoodies and caps"}
	prints := entity.Category{Name: "Prints", Slug: "prints", Description: "Posters and art prints"}
	if err := db.Create(&apparel).Error; err != nil {
		return err
	}
	if err := db.Create(&prints).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Logo Tee", Slug: "logo-tee", Price: 19.99, Stock: 10, Featured: true, IsActive: true, CategoryID: &apparel.ID},
		{Name: "Zip Hoodie", Slug: "zip-hoodie", Price: 49.90, Stock: 10, IsActive: true, CategoryID: &apparel.ID},
		{Name: "City Poster", Slug: "city-poster", Price: 12.50, Stock: 10, IsActive: true, CategoryID: &prints.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Println("catalog seeded")
	return nil
}
