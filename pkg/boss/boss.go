package boss

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	pkgLog "github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// Launcher hands decoded events to the BOSS launch queue. The queue owns
// retry and backpressure; callers only learn whether the enqueue itself
// succeeded.
type Launcher interface {
	Launch(ctx context.Context, payload map[string]any) error
}

type launcher struct {
	producer sarama.SyncProducer
	topic    string
	l        pkgLog.Logger
}

// New creates a Kafka-backed Launcher publishing to the given topic.
func New(producer sarama.SyncProducer, topic string, l pkgLog.Logger) Launcher {
	if producer == nil {
		panic("boss: producer is required")
	}
	return &launcher{producer: producer, topic: topic, l: l}
}

// Launch wraps the payload in the launch envelope and publishes it.
func (q *launcher) Launch(ctx context.Context, payload map[string]any) error {
	envelope := map[string]any{"payload": payload}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal launch envelope: %w", err)
	}

	partition, offset, err := q.producer.SendMessage(&sarama.ProducerMessage{
		Topic: q.topic,
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("enqueue launch: %w", err)
	}

	q.l.Debugf(ctx, "launched payload to %s partition=%d offset=%d", q.topic, partition, offset)
	return nil
}
