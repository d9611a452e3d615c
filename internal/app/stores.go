package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Gunvolt24/distinsert/config"
	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/internal/repo/memory"
	"github.com/Gunvolt24/distinsert/internal/repo/postgres"
	"github.com/Gunvolt24/distinsert/internal/repo/sqlite"
	"github.com/Gunvolt24/distinsert/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
	_ "github.com/mattn/go-sqlite3"    // database/sql driver name = "sqlite3"
)

const pingTimeout = 5 * time.Second

// openStores — по клиенту на каждое хранилище для выбранного драйвера.
// Ошибка конфигурации хранилища — ошибка запуска; открытое ранее закрывается.
func openStores(ctx context.Context, cfg *config.Store, log ports.Logger) ([]ports.StoreClient, func(), error) {
	var (
		clients []ports.StoreClient
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for _, s := range domain.Stores() {
		client, closeFn, err := openStore(ctx, cfg, s, log)
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open %s store: %w", s, err)
		}
		clients = append(clients, client)
		closers = append(closers, closeFn)
	}
	return clients, closeAll, nil
}

func openStore(ctx context.Context, cfg *config.Store, s domain.StoreID, log ports.Logger) (ports.StoreClient, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DSN(s), cfg.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		// недоступное хранилище не останавливает прогон: его задача получит insert_failure по записям
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		if err := pool.Ping(pingCtx); err != nil {
			log.Warnf(ctx, "store %s is unreachable, inserts will fail: %v", s, err)
		}
		cancel()
		store, err := postgres.NewStore(pool, s)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.DSN(s), s)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warnf(ctx, "close sqlite store %s: %v", s, err)
			}
		}, nil

	case config.DriverMemory:
		return memory.NewStore(s), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

// Migrate — применяет встроенные миграции к каждому хранилищу. Для memory ничего не делает.
func Migrate(ctx context.Context, cfg *config.Store, log ports.Logger) error {
	var driverName, dialect string
	switch cfg.Driver {
	case config.DriverPostgres:
		driverName, dialect = "pgx", "postgres"
	case config.DriverSQLite:
		driverName, dialect = "sqlite3", "sqlite3"
	case config.DriverMemory:
		log.Infof(ctx, "memory driver: nothing to migrate")
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	for _, s := range domain.Stores() {
		if err := migrateOne(ctx, driverName, dialect, cfg.DSN(s), s); err != nil {
			return err
		}
		log.Infof(ctx, "store %s migrated driver=%s", s, cfg.Driver)
	}
	return nil
}

func migrateOne(ctx context.Context, driverName, dialect, dsn string, s domain.StoreID) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("open %s: %w", s, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", s, err)
	}
	return migrations.Up(ctx, db, dialect, string(s))
}
