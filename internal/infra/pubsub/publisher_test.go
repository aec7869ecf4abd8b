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

	"bvs/config"
	"bvs/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.AgreementEvent {
	return &service.AgreementEvent{
		RequestID:   "req-123",
		EventType:   service.AgreementEventCreated,
		AgreementID: "6f1c1f55-7b0e-4d5c-9a53-0b8d8c3d1a11",
		Kind:        service.AgreementKindStandard,
		OwnerID:     "owner-1",
		TotalCost:   2000,
		Status:      "active",
		OccurredAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAgreementEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.PublishAgreementEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, event.AgreementID, received.Message.Attributes["agreement_id"])
	assert.Equal(t, "created", received.Message.Attributes["event_type"])
	assert.Equal(t, "agreement", received.Message.Attributes["kind"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AgreementEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.AgreementID, decoded.AgreementID)
	assert.InDelta(t, 2000, decoded.TotalCost, 0.001)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishAgreementEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)

	_, ok := attrs["request_id"]
	assert.False(t, ok)
	assert.Len(t, attrs, 3)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{
			name:     "nil config falls back to noop",
			pubsub:   nil,
			wantNoop: true,
		},
		{
			name:     "empty provider falls back to noop",
			pubsub:   &config.PubSubConfig{},
			wantNoop: true,
		},
		{
			name:    "local without endpoint",
			pubsub:  &config.PubSubConfig{Provider: ProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			pubsub:  &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "events"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topic",
			pubsub:  &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "bvs"},
			wantErr: "topic ID is required",
		},
		{
			name:    "rabbitmq without url",
			pubsub:  &config.PubSubConfig{Provider: ProviderRabbitMQ},
			wantErr: "url is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			assert.NoError(t, publisher.PublishAgreementEvent(context.Background(), sampleEvent()))
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNewEventPublisher_LocalRegistersCloseHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc: lc,
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      ProviderLocal,
			LocalEndpoint: "http://127.0.0.1:0/push",
		}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	require.NotNil(t, publisher)

	lc.RequireStart().RequireStop()
}
