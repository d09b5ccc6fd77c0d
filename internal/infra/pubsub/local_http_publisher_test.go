package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:          service.EventOrderPlaced,
		RequestID:     "req-123",
		OrderID:       "0b7c6f3e-5a43-4c1e-9d7b-0e3f2f0c9d11",
		OrderNumber:   "ORD-1700000000000-AB12",
		UserID:        "6f1d2c1e-1111-4c1e-9d7b-0e3f2f0c9d11",
		Status:        "PENDING",
		PaymentStatus: "PENDING",
		Total:         "12451.79",
		OccurredAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, service.EventOrderPlaced, received.Message.Attributes["type"])
	assert.Equal(t, event.OrderNumber, received.Message.Attributes["order_number"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishOrderEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, publisher service.EventPublisher)
	}{
		{
			name: "missing section disables publishing",
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
			},
		},
		{
			name:   "explicit noop",
			pubsub: &config.PubSubConfig{Provider: ProviderNoop},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishOrderEvent(context.Background(), newTestEvent()))
			},
		},
		{
			name:   "local provider",
			pubsub: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8090/push"},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			},
		},
		{
			name:    "local provider requires endpoint",
			pubsub:  &config.PubSubConfig{Provider: ProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google provider requires project",
			pubsub:  &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "order-events"},
			wantErr: "project ID is required",
		},
		{
			name:    "google provider requires topic",
			pubsub:  &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "demo"},
			wantErr: "topic ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}
