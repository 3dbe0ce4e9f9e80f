package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/service"
)

// publishAuthEvent sends an auth event best-effort. A failed publish is logged and never fails the caller.
func publishAuthEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType, subject string, attributes map[string]string) {
	if publisher == nil {
		return
	}

	event := &service.AuthEvent{
		Type:       eventType,
		Subject:    subject,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}

	if err := publisher.PublishAuthEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish auth event",
			slog.String("type", eventType),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}
