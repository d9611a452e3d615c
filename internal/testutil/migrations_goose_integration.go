//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
)

// ApplyMigrationsGoose — применяет встроенные миграции всех хранилищ к одной базе Postgres.
func ApplyMigrationsGoose(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	for _, s := range domain.Stores() {
		if err := migrations.Up(ctx, db, "postgres", string(s)); err != nil {
			return err
		}
	}
	return nil
}
