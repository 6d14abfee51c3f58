package notifications

import "context"

// Notifier delivers a one-line message to an external chat channel.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Noop drops every message. Used when no chat credentials are configured.
type Noop struct{}

func (Noop) Notify(context.Context, string) error {
	return nil
}
