package kafka

import (
	"fmt"

	"github.com/IBM/sarama"

	"github.com/OlegGirko/boss-launcher-webhook/config"
)

var producer sarama.SyncProducer

// ConnectProducer creates a synchronous Kafka producer for the launch queue.
func ConnectProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}

	producer = p
	return p, nil
}

// DisconnectProducer closes the producer created by ConnectProducer.
func DisconnectProducer() {
	if producer != nil {
		producer.Close()
		producer = nil
	}
}
