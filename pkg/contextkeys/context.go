package contextkeys

type ContextKey string

const (
	// DBContextKey - ключ, под которым DBMiddleware кладет *gorm.DB
	// (пул или тестовую транзакцию) в контекст запроса.
	DBContextKey ContextKey = "db"
)
