package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-website/services"
)

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	store.put("abc", &bookingSession{toasts: &toastBuffer{}})

	_, ok := store.get("abc")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = store.get("abc")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreSweep(t *testing.T) {
	store := NewSessionStore(20 * time.Millisecond)
	store.put("stale", &bookingSession{toasts: &toastBuffer{}})
	time.Sleep(40 * time.Millisecond)
	store.put("fresh", &bookingSession{toasts: &toastBuffer{}})

	store.Sweep()
	assert.Equal(t, 1, store.Len())
	_, ok := store.get("fresh")
	assert.True(t, ok)
}

func TestToastBufferDrain(t *testing.T) {
	buf := &toastBuffer{}
	buf.Notify(services.Notification{Level: "success", Title: "ok"})
	buf.Notify(services.Notification{Level: "error", Title: "bad"})

	out := buf.Drain()
	assert.Len(t, out, 2)
	assert.Equal(t, "ok", out[0].Title)

	// Draining again returns an empty, non-nil slice.
	out = buf.Drain()
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
