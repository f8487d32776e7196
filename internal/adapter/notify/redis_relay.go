package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

const publishTimeout = 2 * time.Second

// RedisRelay publishes delivered notifications to a Redis channel so that
// off-process listeners can consume alerts. It only publishes; nothing is
// read back or stored.
type RedisRelay struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisRelay(client *redis.Client, channel string, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, logger: logger}
}

// Subscriber wraps the relay as a dispatcher subscriber under the given
// role.
func (r *RedisRelay) Subscriber(role domain.Role) port.Subscriber {
	return port.Subscriber{Role: role, Deliver: r.publish}
}

// publish is best-effort: a failed publish is logged and dropped, matching
// the dispatcher's delivery contract.
func (r *RedisRelay) publish(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := r.client.Publish(ctx, r.channel, message).Err(); err != nil {
		r.logger.Warn("alert relay publish failed",
			zap.String("channel", r.channel),
			zap.Error(err),
		)
	}
}
