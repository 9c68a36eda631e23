package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mados/internal/domain/entity"
)

type recordingHandler struct {
	markedFor string
	partner   string
	coords    entity.Coordinates
	err       error
}

func (h *recordingHandler) MarkRead(userID, partnerID string) error {
	h.markedFor, h.partner = userID, partnerID
	return h.err
}

func (h *recordingHandler) UpdateLocation(userID string, coords entity.Coordinates) {
	h.coords = coords
}

func register(m *Manager, userID string) *Client {
	c := &Client{UserID: userID, Send: make(chan []byte, sendBuffer)}
	m.add(c)
	return c
}

func nextEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case raw := <-c.Send:
		var ev Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		return ev
	default:
		t.Fatal("no event queued")
		return Event{}
	}
}

func TestNotifyReachesEveryConnectionOfUser(t *testing.T) {
	m := NewManager()
	a := register(m, "user-1")
	b := register(m, "user-1")
	other := register(m, "user-2")

	m.Notify("user-1", EventNotification, map[string]string{"id": "notif-1"})

	assert.Equal(t, EventNotification, nextEvent(t, a).Type)
	assert.Equal(t, EventNotification, nextEvent(t, b).Type)
	assert.Empty(t, other.Send)
	assert.True(t, m.IsOnline("user-1"))
}

func TestRemoveClosesSendChannel(t *testing.T) {
	m := NewManager()
	c := register(m, "user-1")

	m.remove(c)
	m.remove(c)

	_, open := <-c.Send
	assert.False(t, open)
	assert.False(t, m.IsOnline("user-1"))
}

func TestStoppedManagerDoesNotBlockClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)

	c := &Client{UserID: "user-1", Send: make(chan []byte, sendBuffer)}
	require.True(t, m.Connect(c))
	require.Eventually(t, func() bool { return m.IsOnline("user-1") }, time.Second, time.Millisecond)

	cancel()
	<-m.done

	disconnected := make(chan struct{})
	go func() {
		m.Disconnect(c)
		close(disconnected)
	}()
	select {
	case <-disconnected:
	case <-time.After(time.Second):
		t.Fatal("Disconnect blocked after shutdown")
	}

	assert.False(t, m.IsOnline("user-1"))
	assert.False(t, m.Connect(&Client{UserID: "user-2", Send: make(chan []byte, 1)}))
}

func TestFullBufferDropsClient(t *testing.T) {
	m := NewManager()
	register(m, "user-1")

	for i := 0; i <= sendBuffer; i++ {
		m.SendToUser("user-1", []byte("x"))
	}

	assert.False(t, m.IsOnline("user-1"))
}

func TestHandleClientMessage(t *testing.T) {
	m := NewManager()
	h := &recordingHandler{}
	m.SetHandler(h)
	c := register(m, "user-1")

	m.HandleClientMessage(c, []byte(`{"type":"ping"}`))
	assert.Equal(t, EventPong, nextEvent(t, c).Type)

	m.HandleClientMessage(c, []byte(`{"type":"mark_read","data":{"partner_id":"user-2"}}`))
	assert.Equal(t, "user-1", h.markedFor)
	assert.Equal(t, "user-2", h.partner)

	m.HandleClientMessage(c, []byte(`{"type":"location","data":{"latitude":-7.5,"longitude":110.8}}`))
	assert.Equal(t, entity.Coordinates{Latitude: -7.5, Longitude: 110.8}, h.coords)

	h.err = errors.New("chat not found")
	m.HandleClientMessage(c, []byte(`{"type":"mark_read","data":{"partner_id":"user-3"}}`))
	ev := nextEvent(t, c)
	assert.Equal(t, EventError, ev.Type)
	assert.Equal(t, "chat not found", ev.Data)

	m.HandleClientMessage(c, []byte(`not json`))
	assert.Equal(t, EventError, nextEvent(t, c).Type)
}

func TestLocationOutOfRangeIsRejected(t *testing.T) {
	m := NewManager()
	h := &recordingHandler{}
	m.SetHandler(h)
	c := register(m, "user-1")

	for _, raw := range []string{
		`{"type":"location","data":{"latitude":91,"longitude":110.8}}`,
		`{"type":"location","data":{"latitude":-7.5,"longitude":-180.5}}`,
	} {
		m.HandleClientMessage(c, []byte(raw))
		ev := nextEvent(t, c)
		assert.Equal(t, EventError, ev.Type)
		assert.Equal(t, "invalid location", ev.Data)
	}
	assert.Equal(t, entity.Coordinates{}, h.coords)
}
