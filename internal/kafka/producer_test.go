package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeWriter — запоминает сообщения вместо отправки в брокер.
type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func TestProducer_PublishesReport(t *testing.T) {
	metrics.MustRegister()
	w := &fakeWriter{}
	p := newProducer(w, "seed-results", noopLogger{})

	report := &domain.Report{
		Store: domain.StoreOrders,
		Results: []domain.Result{
			domain.Succeeded(domain.Order{ID: 1, UserID: 1, ProductID: 1, Quantity: 2}),
			domain.Rejected(domain.Order{ID: 8, UserID: 8, ProductID: 8}, []string{"Quantity must be positive"}),
		},
	}
	before := testutil.ToFloat64(metrics.KafkaReportsPublished.WithLabelValues("seed-results"))

	ctx := ctxmeta.WithRunID(context.Background(), "run-42")
	if err := p.Emit(ctx, report); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("want 1 message, got %d", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "orders" {
		t.Fatalf("key: want orders, got %q", msg.Key)
	}
	if len(msg.Headers) != 1 || msg.Headers[0].Key != HeaderRunID || string(msg.Headers[0].Value) != "run-42" {
		t.Fatalf("unexpected headers %+v", msg.Headers)
	}

	var got struct {
		Store   string `json:"store"`
		Results []struct {
			Outcome string   `json:"outcome"`
			Errors  []string `json:"errors"`
		} `json:"results"`
	}
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	if got.Store != "orders" || len(got.Results) != 2 || got.Results[1].Outcome != "validation_failure" {
		t.Fatalf("unexpected payload %s", msg.Value)
	}
	if after := testutil.ToFloat64(metrics.KafkaReportsPublished.WithLabelValues("seed-results")); after != before+1 {
		t.Fatalf("KafkaReportsPublished: got=%v want=%v", after, before+1)
	}
}

func TestProducer_NoRunIDNoHeader(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t", noopLogger{})
	if err := p.Emit(context.Background(), &domain.Report{Store: domain.StoreUsers}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(w.msgs[0].Headers) != 0 {
		t.Fatalf("no headers expected, got %+v", w.msgs[0].Headers)
	}
}

func TestProducer_WriteError(t *testing.T) {
	boom := errors.New("leader not available")
	p := newProducer(&fakeWriter{err: boom}, "t", noopLogger{})
	if err := p.Emit(context.Background(), &domain.Report{Store: domain.StoreUsers}); !errors.Is(err, boom) {
		t.Fatalf("want wrapped write error, got %v", err)
	}
	if err := p.Emit(context.Background(), nil); err == nil {
		t.Fatalf("nil report must fail")
	}
}

func TestProducer_CloseOnce(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t", noopLogger{})
	_ = p.Close()
	_ = p.Close()
	if w.closed != 1 {
		t.Fatalf("writer must be closed once, got %d", w.closed)
	}
}

func TestNewProducer_Validates(t *testing.T) {
	if _, err := NewProducer(&ProducerConfig{Topic: "t"}, noopLogger{}); err == nil {
		t.Fatalf("missing brokers must fail")
	}
	if _, err := NewProducer(&ProducerConfig{Brokers: []string{"k1:9092"}}, noopLogger{}); err == nil {
		t.Fatalf("missing topic must fail")
	}
}

func TestProducerConfig_writer(t *testing.T) {
	t.Parallel()

	cfg := ProducerConfig{Brokers: []string{"k1:9092", "k2:9092"}, Topic: "seed-results"}
	w := cfg.writer()

	if w.Topic != "seed-results" {
		t.Fatalf("Topic: want seed-results, got %s", w.Topic)
	}
	if w.Addr == nil {
		t.Fatalf("Addr must be set")
	}
	for _, b := range cfg.Brokers {
		if !strings.Contains(w.Addr.String(), b) {
			t.Fatalf("Addr: want broker %s in %q", b, w.Addr.String())
		}
	}
	if w.RequiredAcks != kafka.RequireAll {
		t.Fatalf("RequiredAcks: want RequireAll, got %v", w.RequiredAcks)
	}
	if w.WriteTimeout <= 0 {
		t.Fatalf("WriteTimeout must default to a positive value")
	}
}
