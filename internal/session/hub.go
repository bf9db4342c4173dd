package session

import "sync"

type EventKind string

const (
	LoggedIn  EventKind = "login"
	LoggedOut EventKind = "logout"
)

// Event is one authentication state transition.
type Event struct {
	Kind     EventKind
	Username string
}

// Hub fans authentication state changes out to subscribers, replacing the
// implicit observable streams of the previous client. Publish hands the
// event to every current subscriber before it returns, so a login or
// logout is observable before any navigation that follows it.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of events and a cancel function. The caller
// owns the subscription and must cancel it when its consumer goes away;
// an undisposed subscription keeps receiving for the life of the hub.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan Event, 8)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to all current subscribers. Subscribers are
// expected to drain their channel; the buffer only absorbs short bursts.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		ch <- ev
	}
}
