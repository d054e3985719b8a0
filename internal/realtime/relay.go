package realtime

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const relayChannel = "virtutask:realtime"

type envelope struct {
	Channel string          `json:"channel"`
	Frame   json.RawMessage `json:"frame"`
}

// RedisRelay verteilt Events über Redis Pub/Sub an die Hubs aller API-Instanzen.
type RedisRelay struct {
	rdb *redis.Client
	hub *Hub
}

func NewRedisRelay(rdb *redis.Client, hub *Hub) *RedisRelay {
	return &RedisRelay{rdb: rdb, hub: hub}
}

func (r *RedisRelay) Publish(ctx context.Context, channel, event string, payload any) {
	frame, err := json.Marshal(Frame{Event: event, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("Event konnte nicht serialisiert werden")
		return
	}
	msg, err := json.Marshal(envelope{Channel: channel, Frame: frame})
	if err != nil {
		log.Error().Err(err).Msg("Relay-Umschlag konnte nicht serialisiert werden")
		return
	}

	if err := r.rdb.Publish(ctx, relayChannel, msg).Err(); err != nil {
		// Best effort: lokale Zustellung statt Verlust.
		log.Warn().Err(err).Str("event", event).Msg("Redis-Relay nicht erreichbar, nur lokale Zustellung")
		r.hub.Deliver(channel, frame)
	}
}

// Run abonniert den Relay-Kanal bis ctx endet.
func (r *RedisRelay) Run(ctx context.Context) {
	sub := r.rdb.Subscribe(ctx, relayChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Warn().Err(err).Msg("Ungültige Relay-Nachricht verworfen")
				continue
			}
			r.hub.Deliver(env.Channel, env.Frame)
		}
	}
}
