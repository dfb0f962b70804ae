/*
Package notify publishes create notifications of the backend to kafka.

Every created row yields one message on the configured topic. The message key is
"<resource>/<id>", so all messages of one row land on the same partition. The value
is a JSON envelope:

	{"resource":"categorias","operation":"create","id":1,"payload":{...}}
*/
package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/logger"
)

// DefaultTopic is used when no topic is configured
const DefaultTopic = "neurai.notifications"

// Message is the value of every published kafka message
type Message struct {
	Resource  string          `json:"resource"`
	Operation core.Operation  `json:"operation"`
	ID        int64           `json:"id"`
	Payload   json.RawMessage `json:"payload"`
}

// messageWriter is the part of *kafka.Writer the notifier needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka is a core.Notifier which publishes to a kafka topic
type Kafka struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
}

var _ core.Notifier = (*Kafka)(nil)

// NewKafka creates a notifier which publishes to topic on brokers. Topics are
// created on first use if the brokers allow it.
func NewKafka(brokers []string, topic string) *Kafka {
	if topic == "" {
		topic = DefaultTopic
	}
	logger.Default().Infof("publishing notifications to kafka topic %s on %v", topic, brokers)
	return newKafka(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}, topic)
}

func newKafka(writer messageWriter, topic string) *Kafka {
	return &Kafka{writer: writer, topic: topic, timeout: 10 * time.Second}
}

// Topic returns the topic the notifier publishes to
func (k *Kafka) Topic() string {
	return k.topic
}

// Notify publishes one message for the given row. It blocks until the message is
// acknowledged, the context is done or the timeout expires.
func (k *Kafka) Notify(ctx context.Context, resource string, operation core.Operation, id int64, payload []byte) error {
	value, err := json.MarshalWithOption(Message{
		Resource:  resource,
		Operation: operation,
		ID:        id,
		Payload:   payload,
	}, json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(resource + "/" + strconv.FormatInt(id, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "operation", Value: []byte(operation)},
		},
	}
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: logger.RequestIDHeader, Value: []byte(requestID)})
	}
	if err = k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", k.topic, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer
func (k *Kafka) Close() error {
	return k.writer.Close()
}
