package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options - параметры подключения
type Options struct {
	Driver string // postgres, mysql, sqlite
	DSN    string
	Debug  bool
}

// Open открывает соединение через нужный диалект.
// TranslateError включен: нарушения уникальности приходят как gorm.ErrDuplicatedKey.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.NewGormLogger(opts.Debug, 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	if opts.Driver == "sqlite" {
		// sqlite по умолчанию не проверяет внешние ключи
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, errors.New("database url is empty")
	}
	switch strings.ToLower(driver) {
	case "", "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserRole{},
		&models.User{},
		&models.Token{},
		&models.UserProfile{},
		&models.Category{},
		&models.Major{},
		&models.Education{},
		&models.Experience{},
		&models.Company{},
		&models.Post{},
		&models.Apply{},
		&models.Rating{},
		&models.Comment{},
		&models.SavedPost{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return SeedRoles(db)
}

// DefaultRoles - роли с фиксированными идентификаторами
var DefaultRoles = []models.UserRole{
	{ID: models.RoleAdminID, Name: "admin", Description: "Platform administrator"},
	{ID: models.RoleJobSeekerID, Name: "job seeker", Description: "Default role for self-registered accounts"},
	{ID: models.RoleHirerID, Name: "hirer", Description: "Owns a company and publishes posts"},
}

// SeedRoles идемпотентно создает роли
func SeedRoles(db *gorm.DB) error {
	roles := make([]models.UserRole, len(DefaultRoles))
	copy(roles, DefaultRoles)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("failed to seed user roles: %w", err)
	}
	return nil
}
