package realtime

import "context"

// Broadcaster veröffentlicht ein Event auf einem Kanal.
// Zustellung: höchstens einmal, ohne Bestätigung und ohne Replay.
type Broadcaster interface {
	Publish(ctx context.Context, channel, event string, payload any)
}

// PublishEach sendet dasselbe Event an jeden Kanal in channels.
func PublishEach(ctx context.Context, b Broadcaster, channels []string, event string, payload any) {
	for _, ch := range channels {
		b.Publish(ctx, ch, event, payload)
	}
}
