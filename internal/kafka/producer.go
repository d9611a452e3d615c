package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/ports"
	"github.com/Gunvolt24/distinsert/pkg/ctxmeta"
	"github.com/Gunvolt24/distinsert/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// HeaderRunID — заголовок сообщения с идентификатором прогона.
const HeaderRunID = "run_id"

// Проверка, что Producer удовлетворяет порту приёмника отчётов.
var _ ports.ResultSink = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикует отчёт каждой задачи одним сообщением: ключ — хранилище,
// значение — JSON отчёта. Задачи пишут параллельно, kafka.Writer это допускает.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewProducer — конструктор поверх kafka.Writer.
func NewProducer(cfg *ProducerConfig, log ports.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka producer: no brokers")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka producer: empty topic")
	}
	return newProducer(cfg.writer(), cfg.Topic, log), nil
}

func newProducer(w writer, topic string, log ports.Logger) *Producer {
	return &Producer{writer: w, topic: topic, log: log}
}

// Name — метка приёмника в метриках.
func (p *Producer) Name() string { return "kafka" }

func (p *Producer) Emit(ctx context.Context, report *domain.Report) error {
	if report == nil {
		return errors.New("kafka producer: nil report")
	}
	value, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("kafka producer: marshal %s report: %w", report.Store, err)
	}

	msg := kafka.Message{
		Key:   []byte(report.Store),
		Value: value,
	}
	if runID, ok := ctxmeta.RunIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: HeaderRunID, Value: []byte(runID)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka producer: write %s report: %w", report.Store, err)
	}

	metrics.KafkaReportsPublished.WithLabelValues(p.topic).Inc()
	p.log.Infof(ctx, "report published topic=%s store=%s bytes=%d", p.topic, report.Store, len(value))
	return nil
}

// Close — сбрасывает буферы writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
