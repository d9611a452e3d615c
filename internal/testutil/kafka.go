//go:build integration

package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/segmentio/kafka-go"
)

// UniqueTopic — base плюс метка времени до наносекунд: "seed-itc-20250826T010203123456789".
func UniqueTopic(base string) string {
	return base + "-" + strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
}

// EnsureTopic — создаёт топик с одной партицией через контроллер кластера
// и ждёт, пока он появится в метаданных broker. Существующий топик — не ошибка.
func EnsureTopic(ctx context.Context, broker, topic string) error {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	ctrl, err := conn.Controller()
	_ = conn.Close()
	if err != nil {
		return err
	}

	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return err
	}

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		parts, perr := admin.ReadPartitions(topic)
		if perr == nil && len(parts) > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}

// PublishedReport — одно сообщение приёмника: ключ, run_id и разобранный отчёт.
type PublishedReport struct {
	Store  domain.StoreID
	RunID  string
	Report map[string]any
}

// ReadReports — читает n сообщений топика с начала.
func ReadReports(ctx context.Context, brokers []string, topic string, n int) ([]PublishedReport, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{Brokers: brokers, Topic: topic, StartOffset: kafka.FirstOffset})
	defer reader.Close()

	out := make([]PublishedReport, 0, n)
	for len(out) < n {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return out, err
		}
		pr := PublishedReport{Store: domain.StoreID(msg.Key)}
		for _, h := range msg.Headers {
			if h.Key == "run_id" {
				pr.RunID = string(h.Value)
			}
		}
		if err := json.Unmarshal(msg.Value, &pr.Report); err != nil {
			return out, fmt.Errorf("decode report %s: %w", msg.Key, err)
		}
		out = append(out, pr)
	}
	return out, nil
}
