package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rl1809/auto-restock/internal/core/domain"
)

func TestLogSubscriberWritesRoleTaggedEntries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sub := LogSubscriber(domain.RoleManager, zap.New(core))

	assert.Equal(t, domain.RoleManager, sub.Role)

	sub.Deliver("Low stock: Widget (Qty: 1)")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "stock alert", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "manager", fields["role"])
	assert.Equal(t, "Low stock: Widget (Qty: 1)", fields["message"])
}
