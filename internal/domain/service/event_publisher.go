package service

import (
	"context"
	"time"
)

// Auth event types.
const (
	AuthEventLogin            = "login"
	AuthEventLogout           = "logout"
	AuthEventRegistered       = "registered"
	AuthEventInvitationIssued = "invitation.issued"
)

// AuthEvent describes a session or registration change for downstream consumers (audit, analytics).
// It never carries token values.
type AuthEvent struct {
	Type       string            `json:"type"`
	Subject    string            `json:"subject"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an auth event
	PublishAuthEvent(ctx context.Context, event *AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
