package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTripKeepsTypeAndTime(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	evt := BaseEvent{Type: "BONUS_STATUS_CHANGED", Data: map[string]interface{}{"code": "WELCOME"}, OccurredAt: at}

	raw, err := json.Marshal(ToEnvelope(evt))
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	back := env.Event()

	assert.Equal(t, "BONUS_STATUS_CHANGED", back.EventType())
	assert.True(t, at.Equal(back.Timestamp()))
	assert.Equal(t, "WELCOME", back.Payload()["code"])
}
