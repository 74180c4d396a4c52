package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы будем хранить *gorm.DB в context
const DBContextKey = contextKey("db")

// CallerContextKey - аутентифицированный вызывающий (*auth.Caller) в gin.Context
const CallerContextKey = contextKey("caller")
