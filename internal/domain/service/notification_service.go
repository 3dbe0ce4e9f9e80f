package service

import (
	"context"
)

// Notification is a message for an external channel, optionally with an image attachment.
type Notification struct {
	ChannelID string
	Text      string
	Image     []byte // PNG bytes, sent as a photo with Text as caption when present
	ImageName string
}

// Notifier delivers messages over the out-of-band side-channel. Delivery is best-effort:
// callers log a failed delivery and carry on.
type Notifier interface {
	Notify(ctx context.Context, notification *Notification) error
}
