package ports

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/domain"
)

// ResultSink — приёмник итогового отчёта задачи (лог, брокер и т.п.).
type ResultSink interface {
	Emit(ctx context.Context, report *domain.Report) error
}
