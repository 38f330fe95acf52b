package stream

import "context"

// StreamConsumer pulls generation events from a broker and feeds them to the
// generation pipeline. Implementations publish a result per consumed event.
type StreamConsumer interface {
	// Setup creates broker-side resources (consumer groups, subscriptions).
	// It must be safe to call on every start.
	Setup(ctx context.Context) error

	// Start blocks, consuming events until ctx is cancelled.
	Start(ctx context.Context) error

	// Stop releases any resources not tied to ctx.
	Stop() error
}
