package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/core/service"
)

// SubscriberConfig names one entry of the startup subscriber roster.
type SubscriberConfig struct {
	Role string `yaml:"role"`
}

// Config carries the facade-level settings. The core only ever sees plain
// values drawn from here; nothing in it reads the environment or files.
type Config struct {
	ListenAddr    string             `yaml:"listen_addr"`
	RedisAddr     string             `yaml:"redis_addr"`
	AlertChannel  string             `yaml:"alert_channel"`
	ReorderFactor int                `yaml:"reorder_factor"`
	Subscribers   []SubscriberConfig `yaml:"subscribers"`
}

// Default returns the configuration used when no file is supplied: serve on
// :8080, no Redis relay, order twice the threshold, notify a manager and a
// supplier.
func Default() Config {
	return Config{
		ListenAddr:    ":8080",
		AlertChannel:  "stock-alerts",
		ReorderFactor: service.DefaultReorderFactor,
		Subscribers: []SubscriberConfig{
			{Role: string(domain.RoleManager)},
			{Role: string(domain.RoleSupplier)},
		},
	}
}

// Load reads the YAML file at path. An empty path or a missing file is
// treated as "use defaults" to simplify startup.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration payload. Fields absent from
// the payload keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.ReorderFactor <= 0 {
		return fmt.Errorf("reorder_factor must be positive, got %d", c.ReorderFactor)
	}
	for _, sub := range c.Subscribers {
		if _, err := domain.ParseRole(sub.Role); err != nil {
			return fmt.Errorf("subscriber: %w", err)
		}
	}
	return nil
}

// SubscriberRoles returns the roster as parsed role tags. Call only after
// a successful Load or Parse; validation guarantees every entry parses.
func (c Config) SubscriberRoles() []domain.Role {
	roles := make([]domain.Role, 0, len(c.Subscribers))
	for _, sub := range c.Subscribers {
		role, err := domain.ParseRole(sub.Role)
		if err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles
}
