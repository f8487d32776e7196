package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

// Subscription identifies a registered subscriber so it can be removed.
type Subscription int

// Dispatcher fans notification messages out to registered subscribers.
// It owns the subscriber list and nothing else; it never touches item or
// order state. Delivery is synchronous and best-effort, in registration
// order.
type Dispatcher struct {
	logger *zap.Logger

	mu   sync.Mutex
	next Subscription
	subs []registration
}

type registration struct {
	token Subscription
	sub   port.Subscriber
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Subscribe registers sub and returns a token for later removal.
func (d *Dispatcher) Subscribe(sub port.Subscriber) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.next++
	d.subs = append(d.subs, registration{token: d.next, sub: sub})
	d.logger.Debug("subscriber registered", zap.String("role", string(sub.Role)))
	return d.next
}

// Unsubscribe removes the subscriber registered under token. Unknown tokens
// are a no-op.
func (d *Dispatcher) Unsubscribe(token Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, reg := range d.subs {
		if reg.token == token {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Broadcast delivers message to every current subscriber.
func (d *Dispatcher) Broadcast(message string) {
	for _, sub := range d.snapshot() {
		sub.Deliver(message)
	}
}

// NotifyRole delivers message only to subscribers tagged with role.
func (d *Dispatcher) NotifyRole(message string, role domain.Role) {
	for _, sub := range d.snapshot() {
		if sub.Role == role {
			sub.Deliver(message)
		}
	}
}

// snapshot copies the subscriber list so delivery handlers run outside the
// lock and may themselves subscribe or unsubscribe.
func (d *Dispatcher) snapshot() []port.Subscriber {
	d.mu.Lock()
	defer d.mu.Unlock()

	subs := make([]port.Subscriber, len(d.subs))
	for i, reg := range d.subs {
		subs[i] = reg.sub
	}
	return subs
}
