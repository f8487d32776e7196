package notify

import (
	"go.uber.org/zap"

	"github.com/rl1809/auto-restock/internal/core/domain"
	"github.com/rl1809/auto-restock/internal/port"
)

// LogSubscriber returns a subscriber whose delivery capability writes the
// message to the given logger, tagged with the subscriber's role.
func LogSubscriber(role domain.Role, logger *zap.Logger) port.Subscriber {
	return port.Subscriber{
		Role: role,
		Deliver: func(message string) {
			logger.Info("stock alert",
				zap.String("role", string(role)),
				zap.String("message", message),
			)
		},
	}
}
