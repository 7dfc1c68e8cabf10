package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SendToUser(t *testing.T) {
	h := NewHub(nil)
	a1 := h.register("a")
	a2 := h.register("a")
	b := h.register("b")

	n := h.SendToUser("a", Event{Type: "ping", Data: 1})
	assert.Equal(t, 2, n)
	assert.Len(t, a1.send, 1)
	assert.Len(t, a2.send, 1)
	assert.Len(t, b.send, 0)

	var ev Event
	require.NoError(t, json.Unmarshal(<-a1.send, &ev))
	assert.Equal(t, "ping", ev.Type)
}

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(nil)
	h.register("a")
	h.register("b")

	assert.Equal(t, 2, h.Broadcast(Event{Type: "x"}))
	assert.Equal(t, 0, h.SendToUser("nobody", Event{Type: "x"}))
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := NewHub(nil)
	slow := h.register("a")

	for i := 0; i < sendBuffer; i++ {
		require.Equal(t, 1, h.SendToUser("a", Event{Type: "fill"}))
	}
	assert.Equal(t, 0, h.SendToUser("a", Event{Type: "overflow"}))
	assert.False(t, h.IsOnline("a"))

	n := 0
	for range slow.send {
		n++
	}
	assert.Equal(t, sendBuffer, n, "buffered frames drain, then the channel is closed")
}

func TestHub_UnregisterTwice(t *testing.T) {
	h := NewHub(nil)
	c := h.register("a")
	assert.True(t, h.IsOnline("a"))

	h.unregister(c)
	assert.NotPanics(t, func() { h.unregister(c) })
	assert.Equal(t, 0, h.OnlineCount())
}

func TestHub_Close(t *testing.T) {
	h := NewHub(nil)
	c := h.register("a")
	h.Close()

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, h.OnlineCount())
	assert.NotPanics(t, func() { h.unregister(c) })
}
