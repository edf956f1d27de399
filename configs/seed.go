package configs

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/amjudson/react-redmango-api/entity"
)

// SeedRoles provisions the two fixed roles. Idempotent, runs at every
// startup so registration never has to create roles in the request path.
func SeedRoles() error {
	db := DB()

	for _, name := range []string{entity.RoleAdmin, entity.RoleCustomer} {
		if err := db.FirstOrCreate(&entity.Role{}, entity.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first admin account from env, if configured.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("username = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var role entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&role).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Username: cfg.AdminEmail,
		Email:    cfg.AdminEmail,
		Name:     "Admin",
		Password: string(hash),
		RoleID:   role.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("admin account seeded")
	return nil
}
