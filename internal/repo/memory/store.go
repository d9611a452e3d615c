// Package memory — клиент хранилища в памяти процесса: уникальность по первичному ключу,
// порядок строк совпадает с порядком вставки. Используется для сухих прогонов и в тестах.
package memory

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

var _ ports.StoreClient = (*Store)(nil)

type row struct {
	key    int64
	record domain.Record
}

// Store — одна «таблица» одного хранилища.
type Store struct {
	store domain.StoreID

	ll    *list.List              // строки в порядке вставки
	index map[int64]*list.Element // первичный ключ -> строка

	mu sync.Mutex
}

func NewStore(store domain.StoreID) *Store {
	return &Store{
		store: store,
		ll:    list.New(),
		index: make(map[int64]*list.Element),
	}
}

func (s *Store) Store() domain.StoreID { return s.store }

// Insert — добавляет запись; повтор первичного ключа отклоняется, как в sqlite.
func (s *Store) Insert(ctx context.Context, record domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if domain.IsNilRecord(record) || record.Store() != s.store {
		return fmt.Errorf("memory %s: %w", s.store, domain.ErrStoreMismatch)
	}

	key := record.PrimaryKey()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[key]; ok {
		return domain.DuplicateKey(fmt.Errorf("UNIQUE constraint failed: %s.id", s.store))
	}
	s.index[key] = s.ll.PushBack(&row{key: key, record: record})
	return nil
}

// Get — строка по первичному ключу.
func (s *Store) Get(key int64) (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return elem.Value.(*row).record, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

// Snapshot — копия всех строк в порядке вставки.
func (s *Store) Snapshot() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Record, 0, s.ll.Len())
	for e := s.ll.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*row).record)
	}
	return out
}
