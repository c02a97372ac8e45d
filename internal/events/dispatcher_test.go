package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var failed, succeeded int
	d.Subscribe(EventLoginFailed, func(_ context.Context, e Event) error {
		failed++
		return nil
	})
	d.Subscribe(EventLoginSucceeded, func(_ context.Context, e Event) error {
		succeeded++
		return nil
	})

	event := Event{ID: "1", Type: EventLoginFailed, Username: "alice", Timestamp: time.Now()}
	if err := d.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if failed != 1 || succeeded != 0 {
		t.Fatalf("expected only the matching handler to run, got failed=%d succeeded=%d", failed, succeeded)
	}
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventAccountRegistered, func(context.Context, Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventAccountRegistered}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !reached {
		t.Fatal("second handler must still run after an error")
	}
}
