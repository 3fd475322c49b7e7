package api

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cczzHoward/article-cli/internal/client/migrations"
	"github.com/cczzHoward/article-cli/internal/client/repositories/drafts"
	"github.com/cczzHoward/article-cli/internal/client/repositories/metadata"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local-store repositories backed by the client DB.
type Repositories struct {
	Metadata metadata.Repository
	Drafts   drafts.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local SQLite database at dsn, applies migrations,
// and returns the repository bundle for the CLI.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Drafts:   drafts.NewSQLiteRepository(db),
	}
	return repos, nil
}
