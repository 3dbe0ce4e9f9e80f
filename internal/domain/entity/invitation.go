package entity

import "time"

// Invitation is a one-time registration token handed out through an external channel (e.g. a Telegram chat).
// There is at most one unconsumed invitation per channel; it is deleted when a registration consumes it.
type Invitation struct {
	ChannelID string
	Token     string
	CreatedAt time.Time
}
