package contextkeys

// Custom key type to avoid collisions with other packages' context values.
type contextKey string

// DBContextKey is the gin context key under which the request-scoped *gorm.DB
// (pool or transaction) is stored.
const DBContextKey = contextKey("db")
