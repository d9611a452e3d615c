package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/repo/sqlite"
	"github.com/Gunvolt24/distinsert/internal/seeddata"
	"github.com/Gunvolt24/distinsert/migrations"
)

func openStore(t *testing.T, store domain.StoreID) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), string(store)+".db"), store)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	sqlDB := s.Session().Driver().(*sql.DB)
	if err := migrations.Up(context.Background(), sqlDB, "sqlite3", string(store)); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func count(t *testing.T, s *sqlite.Store) uint64 {
	t.Helper()
	n, err := s.Session().Collection(string(s.Store())).Find().Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestInsert_WholeSeed(t *testing.T) {
	ctx := context.Background()
	for _, st := range domain.Stores() {
		s := openStore(t, st)
		for _, rec := range seeddata.ForStore(st) {
			if err := s.Insert(ctx, rec); err != nil {
				t.Fatalf("%s id=%d: %v", st, rec.PrimaryKey(), err)
			}
		}
		if got := count(t, s); got != 10 {
			t.Fatalf("%s: want 10 rows, got %d", st, got)
		}
	}
}

func TestInsert_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, domain.StoreUsers)

	if err := s.Insert(ctx, domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := s.Insert(ctx, domain.User{ID: 1, Name: "Bob", Email: "bob@example.com"})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}

	var got domain.User
	if err := s.Session().Collection("users").Find(1).One(&got); err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Name != "Alice" {
		t.Fatalf("row was overwritten: %+v", got)
	}
}

func TestInsert_ForeignRecord(t *testing.T) {
	s := openStore(t, domain.StoreProducts)
	err := s.Insert(context.Background(), domain.User{ID: 1, Name: "A", Email: "a@x"})
	if !errors.Is(err, domain.ErrStoreMismatch) {
		t.Fatalf("want ErrStoreMismatch, got %v", err)
	}
	if count(t, s) != 0 {
		t.Fatalf("nothing must be stored")
	}
}

func TestInsert_MissingTable(t *testing.T) {
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "empty.db"), domain.StoreOrders)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	err = s.Insert(context.Background(), domain.Order{ID: 1, UserID: 1, ProductID: 1, Quantity: 1})
	if err == nil || errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("want a plain store error, got %v", err)
	}
}

func TestOpen_UnknownStore(t *testing.T) {
	if _, err := sqlite.Open(filepath.Join(t.TempDir(), "x.db"), "archive"); err == nil {
		t.Fatalf("unknown store must be rejected")
	}
}
