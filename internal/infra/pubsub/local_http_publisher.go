package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/gatekeeper-auth-events"

// pushEnvelope is the body Cloud Pub/Sub posts to push subscribers. Data is base64 encoded by
// encoding/json because it is a byte slice.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
	OrderingKey string            `json:"orderingKey,omitempty"`
}

// localHTTPPublisher posts push envelopes straight to a development endpoint, so a consumer can be
// exercised without the Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

func NewLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) envelope(event *service.AuthEvent) (*pushEnvelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode auth event")
	}

	return &pushEnvelope{
		Subscription: localSubscription,
		Message: pushMessage{
			Data:        payload,
			Attributes:  messageAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: p.now().UTC(),
			OrderingKey: event.Subject,
		},
	}, nil
}

func (p *localHTTPPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	envelope, err := p.envelope(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Auth event pushed",
		slog.String("type", event.Type),
		slog.String("message_id", envelope.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
