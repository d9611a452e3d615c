package logger

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"go.uber.org/zap"
)

var _ ports.Logger = (*ZapLogger)(nil)

type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — production (JSON) или development (консоль) логгер с полем app=populate-db.
// cleanup сбрасывает буферы; вызывать перед выходом.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	build := zap.NewDevelopment
	if isProd {
		build = zap.NewProduction
	}

	base, err := build(zap.Fields(zap.String("app", "populate-db")))
	if err != nil {
		return nil, nil, err
	}

	l := Wrap(base)
	return l, l.base.Sync, nil
}

// Wrap — обёртка над готовым *zap.Logger (тесты, observer).
func Wrap(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет поля метаданных прогона и запроса, если они есть в контексте.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	fields := make([]any, 0, 8)
	if id, ok := ctxmeta.RunIDFromContext(ctx); ok {
		fields = append(fields, "run_id", id)
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if store, ok := ctxmeta.StoreFromContext(ctx); ok {
		fields = append(fields, "store", string(store))
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tr)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
