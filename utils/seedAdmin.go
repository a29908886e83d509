package utils

import (
	"log"

	"steakz/config"
	"steakz/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	seedAdminUsername = "admin"
	seedAdminEmail    = "admin@steakz.com"
	seedAdminPassword = "admin123"
)

// SeedAdminUser creates the bootstrap ADMIN account when none exists yet, so
// a fresh deployment always has a way in.
func SeedAdminUser(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("username = ?", seedAdminUsername).First(&existing).Error; err == nil {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		return err
	}

	email := seedAdminEmail
	admin := models.User{
		Username: seedAdminUsername,
		Email:    &email,
		Password: string(hashedPassword),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded default admin user. Change its password before going live.")
	return nil
}
