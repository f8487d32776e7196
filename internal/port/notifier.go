package port

import "github.com/rl1809/auto-restock/internal/core/domain"

// Subscriber pairs a role tag with a delivery capability. Delivery is
// synchronous and assumed not to fail; a failing handler is the caller's
// problem, not the dispatcher's.
type Subscriber struct {
	Role    domain.Role
	Deliver func(message string)
}

type Notifier interface {
	// Broadcast delivers message to every subscriber, in registration order
	Broadcast(message string)

	// NotifyRole delivers message only to subscribers tagged with role
	NotifyRole(message string, role domain.Role)
}
