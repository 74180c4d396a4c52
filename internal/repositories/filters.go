package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// ActiveOnly - мягко удаленные записи никогда не попадают в списки
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// likeEscaper экранирует служебные символы LIKE. '!' как escape одинаково понимают postgres, mysql и sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsFold - регистронезависимая подстрока. LOWER/LIKE работает одинаково в postgres, mysql и sqlite.
// % и _ в значении ищутся буквально.
func ContainsFold(column, value string) func(db *gorm.DB) *gorm.DB {
	value = strings.TrimSpace(value)
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '!'", pattern)
	}
}

// PostFilter - необязательные фильтры поиска вакансий, объединяются через AND
type PostFilter struct {
	Keyword    string
	MajorID    *uint
	Location   string
	FromSalary *float64
	ToSalary   *float64
	Old        bool
}

// Scopes возвращает условия WHERE. Отсутствующий фильтр ничего не добавляет.
func (f PostFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	scopes := []func(*gorm.DB) *gorm.DB{
		ActiveOnly,
		ContainsFold("title", f.Keyword),
		ContainsFold("location", f.Location),
	}
	if f.MajorID != nil {
		majorID := *f.MajorID
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("major_id = ?", majorID)
		})
	}
	if f.FromSalary != nil {
		from := *f.FromSalary
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("from_salary > ?", from)
		})
	}
	if f.ToSalary != nil {
		to := *f.ToSalary
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("to_salary < ?", to)
		})
	}
	return scopes
}

// Order: old - сначала старые, иначе сначала новые
func (f PostFilter) Order() func(*gorm.DB) *gorm.DB {
	return ByCreation(f.Old)
}
