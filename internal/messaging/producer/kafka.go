package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"pdao/config"
	"pdao/internal/models"
)

// KafkaProducer publishes mint events so dashboard consumers and member
// notifiers can react to completed mints.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *log.Logger
	topic  string
}

// NewKafkaProducer creates a new KafkaProducer
func NewKafkaProducer(cfg config.NotifierConfig, logger *log.Logger) (*KafkaProducer, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("notifier configuration incomplete: both brokers and topic are required")
	}

	w := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},

		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,

		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Printf("Kafka Writer Error: "+msg, args...)
		}),
	}

	logger.Printf("Mint event producer created, connected to Brokers: %v, Topic: %s", cfg.Brokers, cfg.Topic)

	return &KafkaProducer{
		writer: w,
		logger: logger,
		topic:  cfg.Topic,
	}, nil
}

// Publish sends one mint log entry, keyed by proposal id so events for the
// same proposal land on the same partition.
func (p *KafkaProducer) Publish(ctx context.Context, entry *models.MintLogEntry) error {
	entryBytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize mint log entry: %w", err)
	}

	kafkaMsg := kafka.Message{
		Key:   []byte(entry.ProposalID),
		Value: entryBytes,
	}

	if err := p.writer.WriteMessages(ctx, kafkaMsg); err != nil {
		p.logger.Printf("Failed to send mint event (proposal: %s): %v", entry.ProposalID, err)
		return fmt.Errorf("failed to write to Kafka buffer: %w", err)
	}

	return nil
}

// Close closes the producer
func (p *KafkaProducer) Close() error {
	p.logger.Println("Closing mint event producer (and flushing buffer)...")
	return p.writer.Close()
}

var _ Producer = (*KafkaProducer)(nil) // Compile-time interface check
