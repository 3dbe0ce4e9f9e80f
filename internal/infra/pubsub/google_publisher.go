package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"gatekeeper/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher publishes auth events to a Cloud Pub/Sub topic. Events of one subject
// share an ordering key so consumers see a user's logins and logouts in order.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topic)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing auth events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode auth event")
	}

	msg := &pubsub.Message{
		Data:        payload,
		Attributes:  messageAttributes(event),
		OrderingKey: event.Subject,
	}

	messageID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until it is resumed.
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	p.logger.DebugContext(ctx, "Auth event published",
		slog.String("type", event.Type),
		slog.String("message_id", messageID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
