package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/neurai/core"
	"github.com/relabs-tech/neurai/core/logger"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNotifyPublishesEnvelope(t *testing.T) {
	writer := &fakeWriter{}
	k := newKafka(writer, "test-topic")

	ctx, _ := logger.ContextWithRequestID(context.Background(), "req-1")
	err := k.Notify(ctx, "categorias", core.OperationCreate, 7, []byte(`{"id":7,"nome":"Estrelas"}`))
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "categorias/7", string(msg.Key))

	var m Message
	require.NoError(t, json.Unmarshal(msg.Value, &m))
	assert.Equal(t, "categorias", m.Resource)
	assert.Equal(t, core.OperationCreate, m.Operation)
	assert.Equal(t, int64(7), m.ID)
	assert.JSONEq(t, `{"id":7,"nome":"Estrelas"}`, string(m.Payload))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "create", headers["operation"])
	assert.Equal(t, "req-1", headers[logger.RequestIDHeader])

	require.NoError(t, k.Close())
	assert.True(t, writer.closed)
}

func TestNotifyReportsWriteErrors(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	k := newKafka(writer, "test-topic")

	err := k.Notify(context.Background(), "usuarios", core.OperationCreate, 1, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, writer.err)
	assert.Contains(t, err.Error(), "test-topic")
}

func TestNewKafkaDefaultTopic(t *testing.T) {
	k := NewKafka([]string{"localhost:9092"}, "")
	assert.Equal(t, DefaultTopic, k.Topic())
	require.NoError(t, k.Close())
}
