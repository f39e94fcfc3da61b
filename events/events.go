// Package events carries table session and order notifications from the
// ordering flow to the kitchen display hub and the order event queue.
package events

import (
	"context"
	"errors"
	"time"
)

const (
	SessionOpened    = "session_opened"
	SessionClosed    = "session_closed"
	OrderCreated     = "order_created"
	OrderDeleted     = "order_deleted"
	OrderItemRemoved = "order_item_removed"
)

type Event struct {
	Type      string      `json:"event"`
	TableNr   uint8       `json:"table_nr"`
	SessionID uint        `json:"table_session_id"`
	OrderID   uint        `json:"order_id,omitempty"`
	ItemID    uint        `json:"item_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	At        time.Time   `json:"at"`
}

// Notifier delivers an event after the change it describes was committed.
type Notifier interface {
	Notify(ctx context.Context, evt Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }

// Multi fans an event out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, evt Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
