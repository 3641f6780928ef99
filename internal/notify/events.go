// Package notify publishes appointment lifecycle events for the delivery
// subsystem (WhatsApp/SMS workers live elsewhere). The booking core only
// decides that an event happened and for whom.
package notify

import (
	"context"
	"log"
)

const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentNoShow    = "appointment.no_show"
	EventAppointmentCompleted = "appointment.completed"
)

type Event struct {
	Type          string `json:"type"`
	AppointmentID uint   `json:"appointment_id"`
	BarberID      uint   `json:"barber_id"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`

	ServiceName string `json:"service_name"`
	Date        string `json:"date"`       // DD/MM/YYYY, user-facing
	StartTime   string `json:"start_time"` // HH:mm

	Reason string `json:"reason,omitempty"`
}

// Publisher is implemented by the Redis publisher and by test fakes.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Dispatcher decouples request handling from event delivery the same way
// the audit trail does: buffered queue, one worker, drop when full.
type Dispatcher struct {
	pub   Publisher
	queue chan Event
}

func NewDispatcher(pub Publisher) *Dispatcher {
	d := &Dispatcher{
		pub:   pub,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.pub.Publish(context.Background(), ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
