package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)
	return hub
}

func TestBroadcastReachesEveryLocalClient(t *testing.T) {
	hub := startHub(t)
	adminId := uuid.New()

	a := &Client{Hub: hub, AdminID: adminId, Send: make(chan []byte, 4)}
	b := &Client{Hub: hub, AdminID: adminId, Send: make(chan []byte, 4)}
	c := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte, 4)}
	for _, cl := range []*Client{a, b, c} {
		hub.register <- cl
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(context.Background(), dto.AuditMessage{Action: "bonus.create", EntityType: "bonus", EntityId: "b1"})

	for _, cl := range []*Client{a, b, c} {
		select {
		case raw := <-cl.Send:
			var frame struct {
				Type string           `json:"type"`
				Data dto.AuditMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &frame))
			assert.Equal(t, "activity", frame.Type)
			assert.Equal(t, "bonus.create", frame.Data.Action)
		case <-time.After(time.Second):
			t.Fatal("client did not receive broadcast")
		}
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := startHub(t)
	slow := &Client{Hub: hub, AdminID: uuid.New(), Send: make(chan []byte)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(context.Background(), dto.AuditMessage{Action: "banner.reorder"})

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-slow.Send
	assert.False(t, open)
}
