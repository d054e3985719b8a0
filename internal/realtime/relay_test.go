package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachableRedis zeigt auf einen Port, auf dem niemand lauscht.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisRelay_FallsBackToLocalDelivery(t *testing.T) {
	hub := NewHub(4)
	alice := hub.Register("alice")
	bob := hub.Register("bob")
	relay := NewRedisRelay(unreachableRedis(t), hub)

	relay.Publish(context.Background(), "alice", EventTaskCreated, map[string]string{"task_id": "t-1"})

	f := readFrame(t, alice)
	assert.Equal(t, EventTaskCreated, f.Event)
	assert.Equal(t, "t-1", f.Payload.(map[string]any)["task_id"])
	assert.Empty(t, bob.Send)
}

func TestRedisRelay_ProjectRoomFallback(t *testing.T) {
	hub := NewHub(4)
	alice := hub.Register("alice")
	hub.Join(alice, ProjectRoom("p-1"))
	relay := NewRedisRelay(unreachableRedis(t), hub)

	relay.Publish(context.Background(), ProjectRoom("p-1"), EventTaskStatusUpdated, map[string]string{"status": "Completed"})

	f := readFrame(t, alice)
	assert.Equal(t, EventTaskStatusUpdated, f.Event)
}

func TestRedisRelay_RunStopsWithContext(t *testing.T) {
	relay := NewRedisRelay(unreachableRedis(t), NewHub(4))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
