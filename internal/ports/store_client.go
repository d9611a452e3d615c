package ports

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/domain"
)

// StoreClient — дескриптор одного хранилища.
// Требования к реализации: Insert атомарен (локальная транзакция на одну запись);
// запись чужого хранилища отклоняется с domain.ErrStoreMismatch без обращения к БД.
type StoreClient interface {
	// Store — хранилище, к которому привязан клиент.
	Store() domain.StoreID

	// Insert — создать одну запись; ошибка означает, что запись не сохранена.
	Insert(ctx context.Context, record domain.Record) error
}
