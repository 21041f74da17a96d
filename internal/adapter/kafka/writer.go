// Package kafka publishes render-run summaries for downstream consumers
// (dashboards, freshness monitors) that react to regenerated maps.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jetscout/opportunity-maps/internal/config"
	"github.com/jetscout/opportunity-maps/internal/domain"
)

// Writer produces render summaries to the summary topic.
// It implements report.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured summary topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSummaryTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSummary serializes and publishes one run summary.
func (w *Writer) PublishSummary(ctx context.Context, summary domain.RenderSummary) error {
	msg, err := serializeSummary(summary)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish summary %s: %w", summary.RunID, err)
	}
	w.logger.Info("summary published", "run_id", summary.RunID, "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeSummary marshals a RenderSummary into a Kafka message keyed by run
// ID, so replays of the same run compact onto one message.
func serializeSummary(summary domain.RenderSummary) (kafkago.Message, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize render summary: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(summary.RunID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "generated_at", Value: []byte(summary.GeneratedAt.Format(time.RFC3339))},
			{Key: "maps", Value: []byte(strconv.Itoa(len(summary.Maps)))},
		},
	}, nil
}
