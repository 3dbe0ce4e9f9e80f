package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAuthEvent(t *testing.T) {
	var received pushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, time.Second, discardLogger())
	event := &service.AuthEvent{
		Type:       service.AuthEventLogin,
		Subject:    "alice",
		RequestID:  "req-1",
		OccurredAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Attributes: map[string]string{"refresh": "rotated"},
	}

	require.NoError(t, publisher.PublishAuthEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "alice", received.Message.OrderingKey)
	assert.Equal(t, map[string]string{
		"type":         "login",
		"subject":      "alice",
		"request_id":   "req-1",
		"attr.refresh": "rotated",
	}, received.Message.Attributes)

	var decoded service.AuthEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, "alice", decoded.Subject)
	assert.Equal(t, service.AuthEventLogin, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, time.Second, discardLogger())

	err := publisher.PublishAuthEvent(context.Background(), &service.AuthEvent{Type: service.AuthEventLogout, Subject: "alice"})
	assert.ErrorContains(t, err, "503")
}

func TestDiscardPublisher(t *testing.T) {
	publisher := &discardPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishAuthEvent(context.Background(), &service.AuthEvent{Type: service.AuthEventRegistered}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{"not configured", nil, false},
		{"empty provider", &config.PubSubConfig{}, false},
		{"local", &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/events"}, false},
		{"local without endpoint", &config.PubSubConfig{Provider: config.PubSubProviderLocal}, true},
		{"google without project", &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "auth"}, true},
		{"google without topic", &config.PubSubConfig{Provider: config.PubSubProviderGoogle, ProjectID: "p"}, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
