// Package kafka publishes detected transfers to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/tracewatch/internal/pkg/logger"
	"github.com/gabapcia/tracewatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/tracewatch/internal/tracescan"
	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"github.com/IBM/sarama"
)

// DefaultTopic is used when no topic is configured.
const DefaultTopic = "tracewatch.transfers"

// TransferMessage is the JSON value of every published message.
type TransferMessage struct {
	BlockNumber    uint64 `json:"blockNumber"`
	TransactionID  string `json:"transactionId"`
	WatchedAddress string `json:"watchedAddress"`
	From           string `json:"from"`
	To             string `json:"to"`
	ValueWei       string `json:"valueWei"`
	ValueEther     string `json:"valueEther"`
}

func newTransferMessage(report tracescan.BlockReport, t transfertrace.Transfer) TransferMessage {
	return TransferMessage{
		BlockNumber:    report.BlockNumber,
		TransactionID:  t.TransactionID,
		WatchedAddress: report.WatchedAddress,
		From:           t.From,
		To:             t.To,
		ValueWei:       t.Wei.String(),
		ValueEther:     t.EtherString(),
	}
}

// Notifier sends one message per transfer, keyed by transaction id so the
// transfers of a transaction land on the same partition.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	retry    retry.Retry
}

var _ tracescan.ReportNotifier = (*Notifier)(nil)

type config struct {
	topic string
	retry retry.Retry
}

// Option customizes the Notifier.
type Option func(*config)

// WithTopic sets the destination topic.
//
// Default: DefaultTopic.
func WithTopic(topic string) Option {
	return func(c *config) {
		if topic != "" {
			c.topic = topic
		}
	}
}

// WithRetry sets the retry policy applied to each publish.
//
// Default: 3 attempts with exponential backoff.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// New wraps an existing producer.
func New(producer sarama.SyncProducer, opts ...Option) *Notifier {
	cfg := config{
		topic: DefaultTopic,
		retry: retry.New(
			retry.WithAttempts(3),
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithRetryIf(isRetriable),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Notifier{
		producer: producer,
		topic:    cfg.topic,
		retry:    cfg.retry,
	}
}

// NewProducer creates a SyncProducer that waits for all in-sync replicas.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second
	cfg.Producer.Retry.Max = 0 // retried by the notifier
	cfg.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return producer, nil
}

// NotifyReport publishes every transfer of the report in order. It stops at
// the first transfer that cannot be delivered.
func (n *Notifier) NotifyReport(ctx context.Context, report tracescan.BlockReport) error {
	for _, t := range report.Report.Transfers {
		value, err := json.Marshal(newTransferMessage(report, t))
		if err != nil {
			return fmt.Errorf("encode transfer %s: %w", t.TransactionID, err)
		}

		msg := &sarama.ProducerMessage{
			Topic: n.topic,
			Key:   sarama.StringEncoder(t.TransactionID),
			Value: sarama.ByteEncoder(value),
		}

		var (
			partition int32
			offset    int64
		)
		err = n.retry.Execute(ctx, func() error {
			var sendErr error
			partition, offset, sendErr = n.producer.SendMessage(msg)
			return sendErr
		})
		if err != nil {
			return fmt.Errorf("publish transfer %s: %w", t.TransactionID, err)
		}

		logger.Debug(ctx, "transfer published",
			"block.number", report.BlockNumber,
			"tx.hash", t.TransactionID,
			"kafka.topic", n.topic,
			"kafka.partition", partition,
			"kafka.offset", offset,
		)
	}

	return nil
}

// Close closes the underlying producer.
func (n *Notifier) Close() error {
	return n.producer.Close()
}

// isRetriable filters out errors that resending the same message cannot fix.
func isRetriable(err error) bool {
	return !errors.Is(err, sarama.ErrMessageSizeTooLarge) &&
		!errors.Is(err, sarama.ErrInvalidMessage) &&
		!errors.Is(err, sarama.ErrClosedClient)
}
