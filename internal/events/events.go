// Package events describes the change notifications emitted after successful mutations.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	InstrumentCreated Type = "instrument.created"
	InstrumentUpdated Type = "instrument.updated"
	InstrumentDeleted Type = "instrument.deleted"
	TradeCreated      Type = "trade.created"
)

type Event struct {
	Type     Type      `json:"type"`
	EntityID uuid.UUID `json:"entity_id"`
	TS       time.Time `json:"ts"`
	Data     any       `json:"data,omitempty"`
}

func New(t Type, id uuid.UUID, data any) Event {
	return Event{Type: t, EntityID: id, TS: time.Now().UTC(), Data: data}
}

// Publisher delivers events. Implementations must not block the caller on I/O
// failures; delivery problems are theirs to log.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type nop struct{}

func (nop) Publish(context.Context, Event) error { return nil }

// Nop discards every event.
func Nop() Publisher { return nop{} }
