// Package migrations — goose-миграции схемы, по каталогу на хранилище.
// Схема одинакова для postgres и sqlite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed users/*.sql products/*.sql orders/*.sql
var FS embed.FS

// goose держит диалект и FS в глобальном состоянии.
// Версии сквозные (users=1, products=2, orders=3), поэтому все три каталога
// можно применить и к одной общей базе.
var mu sync.Mutex

// Up — применяет миграции каталога dir (имя хранилища) к db на диалекте dialect
// ("postgres" или "sqlite3").
func Up(ctx context.Context, db *sql.DB, dialect, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up %s: %w", dir, err)
	}
	return nil
}
