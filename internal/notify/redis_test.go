package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisherPublishesJSON(t *testing.T) {
	srv := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	sub := client.Subscribe(context.Background(), "booking.events")
	defer sub.Close()
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	pub := NewRedisPublisher(client, "booking.events")
	ev := Event{
		Type:          EventAppointmentCreated,
		AppointmentID: 42,
		BarberID:      7,
		ClientName:    "João",
		ServiceName:   "Corte masculino",
		Date:          "10/03/2026",
		StartTime:     "14:30",
	}
	require.NoError(t, pub.Publish(context.Background(), ev))

	msg, err := sub.ReceiveTimeout(context.Background(), 2*time.Second)
	require.NoError(t, err)

	m, ok := msg.(*redis.Message)
	require.True(t, ok)

	var got Event
	require.NoError(t, json.Unmarshal([]byte(m.Payload), &got))
	assert.Equal(t, ev, got)
}

type capturePublisher struct {
	got chan Event
}

func (c *capturePublisher) Publish(_ context.Context, ev Event) error {
	c.got <- ev
	return nil
}

func TestDispatcherDeliversAsync(t *testing.T) {
	sink := &capturePublisher{got: make(chan Event, 1)}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Type: EventAppointmentCancelled, AppointmentID: 9})

	select {
	case ev := <-sink.got:
		assert.Equal(t, EventAppointmentCancelled, ev.Type)
		assert.Equal(t, uint(9), ev.AppointmentID)
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: EventAppointmentCreated})
}
