package configs

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/entity"
	"storefront/pkg/logger"
)

// SeedStaff creates the first staff account from env, once.
func SeedStaff() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		logger.L().Warn().Msg("skip seeding staff: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.L().Info().Str("email", email).Msg("staff user already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Staff",
		LastName:  "Seed",
		Role:      entity.RoleStaff,
	}
	return db.Create(&staff).Error
}
