// Пакет ctxmeta — метаданные прогона, которые прокидываются через context.Context
// (run_id, хранилище, trace_id). Логгер и задачи зависят от него, но не друг от друга.
package ctxmeta

import (
	"context"

	"github.com/Gunvolt24/distinsert/internal/domain"
)

type ctxKey string

const (
	KeyRunID     ctxKey = "run_id"
	KeyStore     ctxKey = "store"
	// KeyRequestID — только для запросов к HTTP-эндпоинтам прогона.
	KeyRequestID ctxKey = "request_id"
)

// WithRunID кладёт run_id в контекст (если пусто — ничего не делает).
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil || runID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRunID, runID)
}

// RunIDFromContext достаёт run_id из контекста.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRunID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStore помечает контекст хранилищем, с которым работает задача.
func WithStore(ctx context.Context, store domain.StoreID) context.Context {
	if ctx == nil || store == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyStore, store)
}

// StoreFromContext достаёт хранилище из контекста.
func StoreFromContext(ctx context.Context) (domain.StoreID, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyStore).(domain.StoreID); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
