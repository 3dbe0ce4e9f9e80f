package pubsub

import (
	"context"
	"log/slog"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// discardPublisher drops every event. It backs deployments without an event sink.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	p.logger.DebugContext(ctx, "Auth event dropped, no pubsub provider configured",
		slog.String("type", event.Type),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the auth event sink named by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Auth events disabled")

		return &discardPublisher{logger: logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing auth event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, timeout, logger), nil
	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// messageAttributes lets subscribers filter on event type without decoding the payload.
func messageAttributes(event *service.AuthEvent) map[string]string {
	attributes := make(map[string]string, len(event.Attributes)+3)
	for key, value := range event.Attributes {
		attributes["attr."+key] = value
	}
	attributes["type"] = event.Type
	attributes["subject"] = event.Subject
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
