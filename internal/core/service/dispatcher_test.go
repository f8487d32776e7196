package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

func collector(role domain.Role, into *[]string) port.Subscriber {
	return port.Subscriber{
		Role: role,
		Deliver: func(message string) {
			*into = append(*into, string(role)+": "+message)
		},
	}
}

func TestBroadcastDeliversInRegistrationOrder(t *testing.T) {
	dispatcher := NewDispatcher(zaptest.NewLogger(t))

	var got []string
	dispatcher.Subscribe(collector(domain.RoleManager, &got))
	dispatcher.Subscribe(collector(domain.RoleSupplier, &got))
	dispatcher.Subscribe(collector(domain.RoleUser, &got))

	dispatcher.Broadcast("restock due")

	assert.Equal(t, []string{
		"manager: restock due",
		"supplier: restock due",
		"user: restock due",
	}, got)
}

func TestNotifyRoleFiltersByRole(t *testing.T) {
	dispatcher := NewDispatcher(zaptest.NewLogger(t))

	var got []string
	dispatcher.Subscribe(collector(domain.RoleManager, &got))
	dispatcher.Subscribe(collector(domain.RoleSupplier, &got))
	dispatcher.Subscribe(collector(domain.RoleSupplier, &got))

	dispatcher.NotifyRole("order placed", domain.RoleSupplier)

	assert.Equal(t, []string{
		"supplier: order placed",
		"supplier: order placed",
	}, got)
}

func TestNotifyRoleWithNoMatchingSubscribers(t *testing.T) {
	dispatcher := NewDispatcher(zaptest.NewLogger(t))

	var got []string
	dispatcher.Subscribe(collector(domain.RoleManager, &got))

	dispatcher.NotifyRole("order placed", domain.RoleAdmin)

	assert.Empty(t, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	dispatcher := NewDispatcher(zaptest.NewLogger(t))

	var got []string
	token := dispatcher.Subscribe(collector(domain.RoleManager, &got))
	dispatcher.Subscribe(collector(domain.RoleSupplier, &got))

	dispatcher.Unsubscribe(token)
	dispatcher.Broadcast("restock due")

	assert.Equal(t, []string{"supplier: restock due"}, got)
}

func TestUnsubscribeUnknownTokenIsNoop(t *testing.T) {
	dispatcher := NewDispatcher(zaptest.NewLogger(t))

	var got []string
	dispatcher.Subscribe(collector(domain.RoleManager, &got))

	dispatcher.Unsubscribe(Subscription(42))
	dispatcher.Broadcast("restock due")

	assert.Len(t, got, 1)
}
