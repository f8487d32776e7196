package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/auto-restock/internal/core/domain"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.ReorderFactor)
	assert.Equal(t, []domain.Role{domain.RoleManager, domain.RoleSupplier}, cfg.SubscriberRoles())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
listen_addr: ":9090"
redis_addr: "localhost:6379"
alert_channel: "alerts"
reorder_factor: 3
subscribers:
  - role: manager
  - role: admin
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "alerts", cfg.AlertChannel)
	assert.Equal(t, 3, cfg.ReorderFactor)
	assert.Equal(t, []domain.Role{domain.RoleManager, domain.RoleAdmin}, cfg.SubscriberRoles())
}

func TestParseKeepsDefaultsForAbsentFields(t *testing.T) {
	cfg, err := Parse([]byte(`listen_addr: ":7000"`))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, 2, cfg.ReorderFactor)
	assert.Equal(t, "stock-alerts", cfg.AlertChannel)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	_, err := Parse([]byte("subscribers:\n  - role: janitor\n"))
	assert.ErrorContains(t, err, "unknown role")
}

func TestParseRejectsNonPositiveReorderFactor(t *testing.T) {
	_, err := Parse([]byte("reorder_factor: 0"))
	assert.ErrorContains(t, err, "reorder_factor")

	_, err = Parse([]byte("reorder_factor: -1"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("listen_addr: [broken"))
	assert.Error(t, err)
}
