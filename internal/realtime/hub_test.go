package realtime

import (
	"context"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFrame(t *testing.T, c *Client) Frame {
	t.Helper()
	select {
	case raw := <-c.Send:
		var f Frame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	default:
		t.Fatal("expected a frame")
		return Frame{}
	}
}

func TestHub_RegisterJoinsOwnChannel(t *testing.T) {
	hub := NewHub(4)
	alice := hub.Register("alice")

	hub.Publish(context.Background(), "alice", EventNewProject, map[string]string{"project_id": "p1"})

	f := readFrame(t, alice)
	assert.Equal(t, EventNewProject, f.Event)
	assert.Equal(t, "p1", f.Payload.(map[string]any)["project_id"])
}

func TestHub_ProjectRoomIsOptIn(t *testing.T) {
	hub := NewHub(4)
	alice := hub.Register("alice")
	bob := hub.Register("bob")
	hub.Join(alice, ProjectRoom("p1"))

	hub.Publish(context.Background(), ProjectRoom("p1"), EventTaskStatusUpdated, nil)

	assert.Len(t, alice.Send, 1)
	assert.Len(t, bob.Send, 0)

	hub.Leave(alice, ProjectRoom("p1"))
	hub.Publish(context.Background(), ProjectRoom("p1"), EventTaskStatusUpdated, nil)
	assert.Len(t, alice.Send, 1)
	assert.Equal(t, 0, hub.RoomSize(ProjectRoom("p1")))
}

func TestHub_SlowClientDropped(t *testing.T) {
	hub := NewHub(1)
	slow := hub.Register("slow")

	hub.Publish(context.Background(), "slow", EventTaskCreated, nil)
	hub.Publish(context.Background(), "slow", EventTaskCreated, nil)

	assert.Equal(t, 0, hub.RoomSize("slow"))
	<-slow.Send
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_UnregisterTwice(t *testing.T) {
	hub := NewHub(1)
	c := hub.Register("alice")
	hub.Join(c, ProjectRoom("p1"))

	hub.Unregister(c)
	hub.Unregister(c)

	assert.Equal(t, 0, hub.RoomSize("alice"))
	assert.Equal(t, 0, hub.RoomSize(ProjectRoom("p1")))
}

func TestPublishEach(t *testing.T) {
	hub := NewHub(4)
	a := hub.Register("a")
	b := hub.Register("b")

	PublishEach(context.Background(), hub, []string{"a", "b", "nobody"}, EventDeletedProject, map[string]string{"project_id": "p1"})

	assert.Equal(t, EventDeletedProject, readFrame(t, a).Event)
	assert.Equal(t, EventDeletedProject, readFrame(t, b).Event)
}

func TestHub_JoinAfterUnregisterIsIgnored(t *testing.T) {
	hub := NewHub(1)
	c := hub.Register("alice")
	hub.Unregister(c)

	hub.Join(c, ProjectRoom("p1"))
	hub.Publish(context.Background(), ProjectRoom("p1"), EventTaskStatusUpdated, nil)

	assert.Equal(t, 0, hub.RoomSize(ProjectRoom("p1")))
}
