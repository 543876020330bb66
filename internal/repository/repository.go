// Package repository selects the storage backend named by DATABASE_URL.
package repository

import (
	"context"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-reports/internal/config"
	"github.com/dafibh/fortuna/fortuna-reports/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository/postgres"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository/sqlite"
	"github.com/rs/zerolog/log"
)

// Repositories holds the collaborators the report services query
type Repositories struct {
	Transactions domain.TransactionRepository
	Categories   domain.CategoryRepository
	Backend      string
}

// Open connects to Postgres or a SQLite budget file and runs pending migrations.
// The returned func releases the connection.
func Open(ctx context.Context, databaseURL string) (*Repositories, func(), error) {
	if config.IsSQLiteURL(databaseURL) {
		db, err := sqlite.Open(config.SQLitePath(databaseURL))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info().Str("path", config.SQLitePath(databaseURL)).Msg("Opened SQLite database")
		return &Repositories{
			Transactions: sqlite.NewTransactionRepository(db),
			Categories:   sqlite.NewCategoryRepository(db),
			Backend:      "sqlite",
		}, func() { _ = db.Close() }, nil
	}

	pool, err := postgres.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("Connected to database")
	return &Repositories{
		Transactions: postgres.NewTransactionRepository(pool),
		Categories:   postgres.NewCategoryRepository(pool),
		Backend:      "postgres",
	}, pool.Close, nil
}
