// Package repo — статическая маршрутизация вида записи в хранилище.
package repo

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
)

var (
	ErrUnknownStore   = errors.New("unknown store")
	ErrDuplicateStore = errors.New("store client registered twice")
	ErrMissingStore   = errors.New("store client missing")
)

// Router — ровно один клиент на каждое из известных хранилищ.
type Router struct {
	clients map[domain.StoreID]ports.StoreClient
}

// NewRouter — проверяет соответствие 1:1 между хранилищами и клиентами.
func NewRouter(clients ...ports.StoreClient) (*Router, error) {
	m := make(map[domain.StoreID]ports.StoreClient, len(clients))
	for _, c := range clients {
		if c == nil {
			return nil, errors.New("router: nil store client")
		}
		s := c.Store()
		if !s.Valid() {
			return nil, fmt.Errorf("router: %q: %w", s, ErrUnknownStore)
		}
		if _, dup := m[s]; dup {
			return nil, fmt.Errorf("router: %s: %w", s, ErrDuplicateStore)
		}
		m[s] = c
	}
	for _, s := range domain.Stores() {
		if _, ok := m[s]; !ok {
			return nil, fmt.Errorf("router: %s: %w", s, ErrMissingStore)
		}
	}
	return &Router{clients: m}, nil
}

// ClientFor — клиент хранилища store.
func (r *Router) ClientFor(store domain.StoreID) (ports.StoreClient, error) {
	c, ok := r.clients[store]
	if !ok {
		return nil, fmt.Errorf("router: %q: %w", store, ErrUnknownStore)
	}
	return c, nil
}

// ClientForRecord — клиент хранилища, куда маршрутизируется запись.
func (r *Router) ClientForRecord(rec domain.Record) (ports.StoreClient, error) {
	if domain.IsNilRecord(rec) {
		return nil, errors.New("router: nil record")
	}
	return r.ClientFor(rec.Store())
}
