package ports

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/domain"
)

// RecordValidator — чистая проверка полей записи.
// Возвращает все найденные проблемы; пустой список — запись можно вставлять.
type RecordValidator interface {
	Validate(ctx context.Context, record domain.Record) []string
}
