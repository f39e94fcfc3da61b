package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/table-order-service/events"
)

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) Notify(context.Context, events.Event) error {
	c.calls++
	return c.err
}

func TestMultiNotifiesEveryone(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	a := &countingNotifier{err: errA}
	b := &countingNotifier{}
	c := &countingNotifier{err: errB}

	err := events.Multi{a, nil, b, c}.Notify(context.Background(), events.Event{Type: events.OrderCreated})

	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestMultiWithoutErrors(t *testing.T) {
	n := &countingNotifier{}
	assert.NoError(t, events.Multi{n, events.Nop{}}.Notify(context.Background(), events.Event{}))
	assert.NoError(t, events.Multi{}.Notify(context.Background(), events.Event{}))
	assert.Equal(t, 1, n.calls)
}
