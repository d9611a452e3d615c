// Package sqlite — клиент хранилища поверх upper/db v4 (адаптер sqlite, драйвер mattn/go-sqlite3).
// Один файл базы на хранилище.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
)

var _ ports.StoreClient = (*Store)(nil)

// Store — клиент одного хранилища; сессия принадлежит Store и закрывается через Close.
type Store struct {
	sess  db.Session
	store domain.StoreID
}

// Open — открывает файл базы path для хранилища store.
func Open(path string, store domain.StoreID) (*Store, error) {
	if !store.Valid() {
		return nil, fmt.Errorf("sqlite: unknown store %q", store)
	}
	sess, err := sqlite.Open(sqlite.ConnectionURL{
		Database: path,
		Options:  map[string]string{"_busy_timeout": "5000"},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open %s: %w", path, err)
	}
	if err := sess.Ping(); err != nil {
		_ = sess.Close()
		return nil, fmt.Errorf("sqlite ping %s: %w", path, err)
	}
	return &Store{sess: sess, store: store}, nil
}

func (s *Store) Store() domain.StoreID { return s.store }

// Insert — одна строка в одной транзакции; повтор ключа — domain.ErrDuplicateKey
// с исходным текстом sqlite ("UNIQUE constraint failed: users.id").
func (s *Store) Insert(ctx context.Context, record domain.Record) error {
	if domain.IsNilRecord(record) || record.Store() != s.store {
		return fmt.Errorf("sqlite %s: %w", s.store, domain.ErrStoreMismatch)
	}

	err := s.sess.TxContext(ctx, func(tx db.Session) error {
		_, err := tx.Collection(string(s.store)).Insert(record)
		return err
	}, nil)
	if err != nil {
		return mapInsertError(err)
	}
	return nil
}

// Close — закрывает сессию.
func (s *Store) Close() error { return s.sess.Close() }

// Session — сессия upper/db, например для миграций через Driver().
func (s *Store) Session() db.Session { return s.sess }

func mapInsertError(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) &&
		(se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey || se.ExtendedCode == sqlite3.ErrConstraintUnique) {
		return domain.DuplicateKey(err)
	}
	// upper/db может не сохранить цепочку ошибок драйвера
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.DuplicateKey(err)
	}
	return err
}
