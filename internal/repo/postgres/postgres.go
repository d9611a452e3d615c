package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connLifetime = time.Hour
	connIdle     = 30 * time.Minute
)

// NewPool — пул одного хранилища. maxConns <= 0 оставляет значение из DSN (или pgx по умолчанию).
// Соединения открываются лениво: недоступный сервер проявится ошибками вставки, а не здесь.
func NewPool(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	cfg.MaxConnLifetime, cfg.MaxConnIdleTime = connLifetime, connIdle

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	return pool, nil
}
