package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageRequest - номер страницы (с 1) и фиксированный размер страницы
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 10
	}
	return p
}

// pastEnd - страница за последней. Считается в int64, огромный номер страницы не переполняет смещение.
func (p PageRequest) pastEnd(total int64) bool {
	p = p.normalized()
	size := int64(p.Size)
	pages := (total + size - 1) / size
	return int64(p.Page-1) >= pages
}

func (p PageRequest) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Size
}

// Paginate - scope LIMIT/OFFSET для любого списка
func Paginate(p PageRequest) func(db *gorm.DB) *gorm.DB {
	p = p.normalized()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}

// ByCreation упорядочивает по дате создания с id как вторым ключом,
// чтобы страницы не пересекались при одинаковых датах.
func ByCreation(ascending bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "created_date"}, Desc: !ascending}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: !ascending})
	}
}

// NewestFirst - порядок по умолчанию для всех списков
func NewestFirst(db *gorm.DB) *gorm.DB {
	return ByCreation(false)(db)
}

// findPage считает общее количество по отфильтрованному запросу, затем загружает одну страницу.
// load применяется только к выборке (порядок, preload), не к COUNT.
// Страница за пределами результата - пустой срез, не ошибка.
func findPage[T any](query *gorm.DB, p PageRequest, load ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	query = query.Session(&gorm.Session{})
	items := make([]T, 0)

	var total int64
	if err := query.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 || p.pastEnd(total) {
		return items, total, nil
	}

	scopes := append(load, Paginate(p))
	if err := query.Scopes(scopes...).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
