package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// subscriptionBuffer bounds the per-subscriber signal queue. A full buffer
// drops the signal: the subscriber is behind and will catch up on the next
// one, since every signal means "re-read the collection" anyway.
const subscriptionBuffer = 8

// Subscription is one listener's handle on a collection's change signals.
// Close it with Unsubscribe when the listener goes away.
type Subscription struct {
	ID         uuid.UUID
	Collection string
	C          <-chan string

	hub *Hub
	ch  chan string
}

// Unsubscribe detaches the subscription and closes its channel. Safe to call
// once per subscription.
func (s *Subscription) Unsubscribe() {
	s.hub.remove(s)
}

// Hub fans Redis change signals out to in-process subscribers. One pattern
// subscription covers every collection channel; each HTTP stream holds
// exactly one Subscription and detaches on disconnect.
type Hub struct {
	client *redis.Client

	mu   sync.Mutex
	subs map[string]map[uuid.UUID]*Subscription

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a hub. Call Run to start relaying signals.
func NewHub(client *redis.Client) *Hub {
	return &Hub{
		client: client,
		subs:   make(map[string]map[uuid.UUID]*Subscription),
	}
}

// Run subscribes to every collection channel and relays signals until the
// context is cancelled or Close is called.
func (h *Hub) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})

	pattern := channelPrefix + "*"
	pubsub := h.client.PSubscribe(ctx, pattern)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		close(h.done)
		return err
	}

	go func() {
		defer close(h.done)
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				h.dispatch(msg.Payload)
			}
		}
	}()

	slog.Info("Change notification hub started", "pattern", pattern)
	return nil
}

// Close stops the relay loop and detaches every subscriber.
func (h *Hub) Close() {
	if h.cancel != nil {
		h.cancel()
		<-h.done
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, byID := range h.subs {
		for _, sub := range byID {
			close(sub.ch)
		}
	}
	h.subs = make(map[string]map[uuid.UUID]*Subscription)
}

// Subscribe registers a listener for one collection's change signals.
func (h *Hub) Subscribe(collection string) *Subscription {
	sub := &Subscription{
		ID:         uuid.New(),
		Collection: collection,
		hub:        h,
		ch:         make(chan string, subscriptionBuffer),
	}
	sub.C = sub.ch

	h.mu.Lock()
	defer h.mu.Unlock()
	byID, ok := h.subs[collection]
	if !ok {
		byID = make(map[uuid.UUID]*Subscription)
		h.subs[collection] = byID
	}
	byID[sub.ID] = sub

	return sub
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byID, ok := h.subs[sub.Collection]
	if !ok {
		return
	}
	if _, ok := byID[sub.ID]; !ok {
		return
	}
	delete(byID, sub.ID)
	if len(byID) == 0 {
		delete(h.subs, sub.Collection)
	}
	close(sub.ch)
}

func (h *Hub) dispatch(collection string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[collection] {
		select {
		case sub.ch <- collection:
		default:
			// Subscriber is behind; the next signal carries the same meaning.
		}
	}
}
