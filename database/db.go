package database

import (
	"fmt"
	"log/slog"

	"bimdb/internal/auth"
	"bimdb/internal/config"
	"bimdb/internal/httpapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@localhost"
)

// ConnectDB opens the Postgres database, migrates the schema and seeds
// the first admin account. TranslateError makes unique-index conflicts
// surface as gorm.ErrDuplicatedKey so the services can type them.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.IsDevelopment() {
		gormLogger = logger.Default
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrateModels(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedAdmin(db, log); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Info("Connected to the database successfully")
	return db, nil
}

func migrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Tag{},
		&models.Comment{},
	)
}

// seedAdmin creates the first admin account on an empty users table.
// The generated password is logged once; it should be rotated on first
// login.
func seedAdmin(db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := newSeedPassword()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Info("Seeded initial admin user",
		"username", defaultAdminUsername,
		"password", password,
	)
	return nil
}
