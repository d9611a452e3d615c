// Package sink — приёмники отчётов задач вставки.
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
)

var _ ports.ResultSink = (*LogSink)(nil)

// LogSink — пишет отчёт в лог: полный список результатов одной строкой и итоговые счётчики.
type LogSink struct {
	log ports.Logger
}

func NewLogSink(log ports.Logger) *LogSink { return &LogSink{log: log} }

func (s *LogSink) Emit(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("log sink: nil report")
	}

	results := report.Results
	if results == nil {
		results = []domain.Result{}
	}
	body, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("log sink: marshal %s results: %w", report.Store, err)
	}

	s.log.Infof(ctx, "%s insert results: %s", report.Store.Label(), body)

	ok, rejected, failed := report.Counts()
	s.log.Infof(ctx, "%s seeding done: %d inserted, %d rejected, %d failed in %s",
		report.Store.Label(), ok, rejected, failed, report.Took)
	return nil
}

// Name — метка приёмника в метриках.
func (s *LogSink) Name() string { return "log" }

var _ ports.ResultSink = (MultiSink)(nil)

// MultiSink — раздаёт отчёт всем приёмникам; сбой одного не мешает остальным.
type MultiSink []ports.ResultSink

// NewMultiSink — собирает приёмники, пропуская nil.
func NewMultiSink(sinks ...ports.ResultSink) MultiSink {
	out := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m MultiSink) Emit(ctx context.Context, report *domain.Report) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, report); err != nil {
			metrics.SinkFailures.WithLabelValues(sinkName(s)).Inc()
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sinkName(s ports.ResultSink) string {
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "unknown"
}
