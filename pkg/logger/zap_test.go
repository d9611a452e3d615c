package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/Gunvolt24/distinsert/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.Wrap(zap.New(core))

	ctx := ctxmeta.WithStore(ctxmeta.WithRunID(context.Background(), "run-1"), domain.StoreUsers)
	log.Warnf(ctx, "insert failed id=%d", 8)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "insert failed id=8" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	fields := e.ContextMap()
	if fields["run_id"] != "run-1" || fields["store"] != "users" {
		t.Fatalf("context fields missing: %v", fields)
	}
}

func TestZapLogger_NoContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.Wrap(zap.New(core))

	log.Infof(context.Background(), "plain")
	log.Errorf(context.Background(), "boom: %v", "x")

	entries := logs.All()
	if len(entries) != 2 || len(entries[0].Context) != 0 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestNewZapLogger_Dev(t *testing.T) {
	log, cleanup, err := logger.NewZapLogger(false)
	if err != nil {
		t.Fatalf("NewZapLogger: %v", err)
	}
	if log == nil || cleanup == nil {
		t.Fatalf("logger and cleanup must be set")
	}
	log.Infof(context.Background(), "dev logger ready")
	_ = cleanup()
}
