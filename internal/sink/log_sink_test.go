package sink_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports/mocks"
	"github.com/Gunvolt24/distinsert/internal/sink"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// lineLogger — собирает отформатированные info-строки.
type lineLogger struct{ lines []string }

func (l *lineLogger) Infof(_ context.Context, format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
func (l *lineLogger) Warnf(context.Context, string, ...any)  {}
func (l *lineLogger) Errorf(context.Context, string, ...any) {}

func TestLogSink_WritesResultsAndCounts(t *testing.T) {
	log := &lineLogger{}
	report := &domain.Report{
		Store: domain.StoreUsers,
		Results: []domain.Result{
			domain.Succeeded(domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}),
			domain.Rejected(domain.User{ID: 10, Email: "jane@example.com"}, []string{"Name cannot be empty"}),
		},
	}

	if err := sink.NewLogSink(log).Emit(context.Background(), report); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(log.lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(log.lines), log.lines)
	}

	want := `User insert results: [{"data":{"id":1,"name":"Alice","email":"alice@example.com"},"success":true,"outcome":"success","errors":null},` +
		`{"data":{"id":10,"name":"","email":"jane@example.com"},"success":false,"outcome":"validation_failure","errors":["Name cannot be empty"]}]`
	if log.lines[0] != want {
		t.Fatalf("unexpected dump:\n got %s\nwant %s", log.lines[0], want)
	}
	if !strings.Contains(log.lines[1], "1 inserted, 1 rejected, 0 failed") {
		t.Fatalf("unexpected counts line %q", log.lines[1])
	}
}

func TestLogSink_EmptyReport(t *testing.T) {
	log := &lineLogger{}
	if err := sink.NewLogSink(log).Emit(context.Background(), &domain.Report{Store: domain.StoreOrders}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if log.lines[0] != "Order insert results: []" {
		t.Fatalf("unexpected dump %q", log.lines[0])
	}
	if err := sink.NewLogSink(log).Emit(context.Background(), nil); err == nil {
		t.Fatalf("nil report must fail")
	}
}

func TestMultiSink_DeliversToAllAndJoinsErrors(t *testing.T) {
	metrics.MustRegister()
	ctrl := gomock.NewController(t)
	report := &domain.Report{Store: domain.StoreProducts}

	first := mocks.NewMockResultSink(ctrl)
	second := mocks.NewMockResultSink(ctrl)
	third := mocks.NewMockResultSink(ctrl)
	errA, errB := errors.New("broker down"), errors.New("disk full")

	first.EXPECT().Emit(gomock.Any(), report).Return(errA)
	second.EXPECT().Emit(gomock.Any(), report).Return(nil)
	third.EXPECT().Emit(gomock.Any(), report).Return(errB)

	before := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("unknown"))

	err := sink.NewMultiSink(first, nil, second, third).Emit(context.Background(), report)
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("want both errors joined, got %v", err)
	}
	if got := testutil.ToFloat64(metrics.SinkFailures.WithLabelValues("unknown")); got != before+2 {
		t.Fatalf("SinkFailures: got=%v want=%v", got, before+2)
	}
}

func TestMultiSink_Empty(t *testing.T) {
	if err := sink.NewMultiSink().Emit(context.Background(), &domain.Report{}); err != nil {
		t.Fatalf("empty fan-out must succeed, got %v", err)
	}
}
