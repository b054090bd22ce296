package events

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// IPublisher delivers interaction events to a broker
type IPublisher interface {
	Publish(ctx context.Context, event domain.InteractionEvent) error
	Close() error
}
