package helpers

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbCounter atomic.Int64

// NewTestDB создает изолированную sqlite-базу в памяти с полной схемой и ролями
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbCounter.Add(1))

	db, err := database.Open(database.Options{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err, "Не удалось открыть sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Одно соединение: база в памяти живет, пока оно открыто
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db), "AutoMigrate не должен падать")
	return db
}

// CreateUser создает пользователя напрямую в БД. Пароль передается в открытом виде.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, roleID uint, confirmed bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	role := roleID
	user := &models.User{
		Username:   username,
		Email:      username + "@test.com",
		Password:   hash,
		UserRoleID: &role,
		IsActive:   confirmed,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", username)
	return user
}

// CreateCompany создает компанию владельца; active=true - одобрена администратором
func CreateCompany(t *testing.T, db *gorm.DB, owner *models.User, name string, active bool) *models.Company {
	t.Helper()

	company := &models.Company{
		UserID:      owner.ID,
		CompanyName: name,
		Active:      active,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

// CreatePost создает активную вакансию компании
func CreatePost(t *testing.T, db *gorm.DB, company *models.Company, title string, mutate ...func(*models.Post)) *models.Post {
	t.Helper()

	post := &models.Post{
		CompanyID: company.ID,
		Title:     title,
		Type:      "full-time",
		TimeWork:  "9-18",
		Quantity:  1,
	}
	for _, m := range mutate {
		m(post)
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// CreateMajor создает специальность в новой категории
func CreateMajor(t *testing.T, db *gorm.DB, name string) *models.Major {
	t.Helper()

	category := &models.Category{Name: name + " category"}
	require.NoError(t, db.Create(category).Error)

	major := &models.Major{Name: name, CategoryID: &category.ID}
	require.NoError(t, db.Create(major).Error)
	return major
}

// Deactivate выставляет active=false. gorm не пишет нулевые значения при Create, если у поля есть default.
func Deactivate(t *testing.T, db *gorm.DB, model interface{}) {
	t.Helper()
	require.NoError(t, db.Model(model).Update("active", false).Error)
}
