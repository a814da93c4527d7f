package http

import "sync"

// Broadcaster fans an event name out to every connected board client.
// Slow or gone clients are skipped rather than blocking the upload path.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan string]struct{})}
}

// Subscribe registers a new listener and returns its channel plus an
// unsubscribe func. The channel is buffered so one missed read does not
// drop the client.
func (b *Broadcaster) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 4)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	unsubscribe := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, unsubscribe
}

// Broadcast sends event to every subscriber without blocking.
func (b *Broadcaster) Broadcast(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribers reports the current listener count.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
