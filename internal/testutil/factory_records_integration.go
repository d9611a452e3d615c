//go:build integration

package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/Gunvolt24/distinsert/internal/domain"
)

// ключи выше сида, чтобы тесты не пересекались с его id 1..10
var nextKey atomic.Int64

func init() { nextKey.Store(1000) }

func NextKey() int64 { return nextKey.Add(1) }

// MakeUser — валидный пользователь с уникальным ключом.
func MakeUser(opts ...func(*domain.User)) domain.User {
	id := NextKey()
	u := domain.User{ID: id, Name: "User", Email: fmt.Sprintf("user-%d@example.com", id)}
	for _, fn := range opts {
		fn(&u)
	}
	return u
}

func MakeProduct() domain.Product {
	return domain.Product{ID: NextKey(), Name: "Widget", Price: 9.99}
}

func MakeOrder() domain.Order {
	return domain.Order{ID: NextKey(), UserID: 1, ProductID: 1, Quantity: 1}
}

func WithUserID(id int64) func(*domain.User) {
	return func(u *domain.User) { u.ID = id }
}
