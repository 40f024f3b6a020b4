package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEvent EventType = "TestEvent"

func TestPublishDispatchesInRegistrationOrder(t *testing.T) {
	bus := NewEventBus()
	var order []string
	bus.Subscribe(testEvent, func(e Event) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe(testEvent, func(e Event) error {
		order = append(order, "second")
		return nil
	})

	bus.Publish(NewEvent(context.Background(), testEvent, nil))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	bus := NewEventBus()
	called := false
	bus.Subscribe(testEvent, func(e Event) error {
		return errors.New("boom")
	})
	bus.Subscribe(testEvent, func(e Event) error {
		called = true
		return nil
	})

	bus.Publish(NewEvent(context.Background(), testEvent, nil))

	assert.True(t, called)
}

func TestPublishWithoutSubscribersIsANoOp(t *testing.T) {
	bus := NewEventBus()

	bus.Publish(NewEvent(context.Background(), "Unknown", nil))
}

func TestEventContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	e := NewEvent(ctx, testEvent, nil)
	assert.Equal(t, "v", e.Context().Value(key{}))

	assert.NotNil(t, Event{}.Context())
}
