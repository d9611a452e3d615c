package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE unique_violation.
const uniqueViolation = "23505"

// Проверка, что Store удовлетворяет интерфейсу StoreClient.
var _ ports.StoreClient = (*Store)(nil)

// txBeginner — часть pgxpool.Pool, нужная для вставки.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store — клиент одного хранилища на Postgres (pgxpool). Одна таблица на хранилище.
type Store struct {
	db    txBeginner
	store domain.StoreID
}

// NewStore — конструктор Store. Пул принадлежит вызывающему.
func NewStore(db txBeginner, store domain.StoreID) (*Store, error) {
	if db == nil {
		return nil, errors.New("postgres: pool is required")
	}
	if !store.Valid() {
		return nil, fmt.Errorf("postgres: unknown store %q", store)
	}
	return &Store{db: db, store: store}, nil
}

func (s *Store) Store() domain.StoreID { return s.store }

// Insert — одна строка в одной транзакции; повтор первичного ключа — domain.ErrDuplicateKey.
func (s *Store) Insert(ctx context.Context, record domain.Record) error {
	query, args, err := s.statement(record)
	if err != nil {
		return err
	}

	transaction, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	// после Commit вернёт pgx.ErrTxClosed; исход вставки уже определён Exec/Commit
	defer func() { _ = transaction.Rollback(ctx) }()

	if _, err = transaction.Exec(ctx, query, args...); err != nil {
		return mapInsertError(err)
	}

	if err = transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// statement — INSERT для таблицы хранилища. Чужая запись отклоняется до открытия транзакции.
func (s *Store) statement(record domain.Record) (string, []any, error) {
	if domain.IsNilRecord(record) || record.Store() != s.store {
		return "", nil, fmt.Errorf("postgres %s: %w", s.store, domain.ErrStoreMismatch)
	}

	switch r := record.(type) {
	case domain.User:
		return `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
			[]any{r.ID, r.Name, r.Email}, nil
	case domain.Product:
		return `INSERT INTO products (id, name, price) VALUES ($1, $2, $3)`,
			[]any{r.ID, r.Name, r.Price}, nil
	case domain.Order:
		return `INSERT INTO orders (id, user_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
			[]any{r.ID, r.UserID, r.ProductID, r.Quantity}, nil
	}
	return "", nil, fmt.Errorf("postgres %s: unsupported record type %T", s.store, record)
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.DuplicateKey(err)
	}
	return err
}
