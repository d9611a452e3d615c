// Package seeddata — фиксированные наборы записей для заполнения хранилищ.
// Каждый вызов возвращает новый срез: задача владеет своим входом целиком.
package seeddata

import "github.com/Gunvolt24/distinsert/internal/domain"

func Users() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
		{ID: 4, Name: "David", Email: "david@example.com"},
		{ID: 5, Name: "Eve", Email: "eve@example.com"},
		{ID: 6, Name: "Frank", Email: "frank@example.com"},
		{ID: 7, Name: "Grace", Email: "grace@example.com"},
		{ID: 8, Name: "Alice", Email: "alice@example.com"},
		{ID: 9, Name: "Henry", Email: "henry@example.com"},
		{ID: 10, Name: "", Email: "jane@example.com"},
	}
}

func Products() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 1000.00},
		{ID: 2, Name: "Smartphone", Price: 700.00},
		{ID: 3, Name: "Headphones", Price: 150.00},
		{ID: 4, Name: "Monitor", Price: 300.00},
		{ID: 5, Name: "Keyboard", Price: 50.00},
		{ID: 6, Name: "Mouse", Price: 30.00},
		{ID: 7, Name: "Laptop", Price: 1000.00},
		{ID: 8, Name: "Smartwatch", Price: 250.00},
		{ID: 9, Name: "Gaming Chair", Price: 500.00},
		{ID: 10, Name: "Earbuds", Price: -50.00},
	}
}

// Orders — заказ 10 ссылается на товар 11, которого нет в сиде; так и задумано.
func Orders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 1, ProductID: 1, Quantity: 2},
		{ID: 2, UserID: 2, ProductID: 2, Quantity: 1},
		{ID: 3, UserID: 3, ProductID: 3, Quantity: 5},
		{ID: 4, UserID: 4, ProductID: 4, Quantity: 1},
		{ID: 5, UserID: 5, ProductID: 5, Quantity: 3},
		{ID: 6, UserID: 6, ProductID: 6, Quantity: 4},
		{ID: 7, UserID: 7, ProductID: 7, Quantity: 2},
		{ID: 8, UserID: 8, ProductID: 8, Quantity: 0},
		{ID: 9, UserID: 9, ProductID: 1, Quantity: -1},
		{ID: 10, UserID: 10, ProductID: 11, Quantity: 2},
	}
}

// ForStore — сид хранилища в виде списка записей. Для неизвестного хранилища — nil.
func ForStore(store domain.StoreID) []domain.Record {
	switch store {
	case domain.StoreUsers:
		return toRecords(Users())
	case domain.StoreProducts:
		return toRecords(Products())
	case domain.StoreOrders:
		return toRecords(Orders())
	}
	return nil
}

func toRecords[T domain.Record](in []T) []domain.Record {
	out := make([]domain.Record, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
