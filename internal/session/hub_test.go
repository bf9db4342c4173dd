package session

import "testing"

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(Event{Kind: LoggedIn, Username: "dana"})

	// Publish hands events over before returning, so the event is already
	// buffered here.
	select {
	case ev := <-events:
		if ev.Kind != LoggedIn || ev.Username != "dana" {
			t.Fatalf("unexpected event %+v", ev)
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestHubDeliversToAllSubscribers(t *testing.T) {
	hub := NewHub()
	first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	hub.Publish(Event{Kind: LoggedOut, Username: "dana"})

	for i, events := range []<-chan Event{first, second} {
		select {
		case ev := <-events:
			if ev.Kind != LoggedOut {
				t.Fatalf("subscriber %d got %+v", i, ev)
			}
		default:
			t.Fatalf("subscriber %d missed the event", i)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	cancel()

	hub.Publish(Event{Kind: LoggedIn, Username: "dana"})

	if _, open := <-events; open {
		t.Fatal("channel should be closed after cancel")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	cancel()
	cancel() // must not panic on double close
}
