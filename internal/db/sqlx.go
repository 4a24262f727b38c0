package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// sqlxDriverNames maps the gorm driver to the name sqlx uses for bind vars
var sqlxDriverNames = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite3",
}

// NewSqlx shares the gorm connection pool with sqlx for hand written queries
func NewSqlx(orm *gorm.DB, driver string) (*sqlx.DB, error) {
	name, ok := sqlxDriverNames[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported airport database driver %q", driver)
	}

	sqlDB, err := orm.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	return sqlx.NewDb(sqlDB, name), nil
}
