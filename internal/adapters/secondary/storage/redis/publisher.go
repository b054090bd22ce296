package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/pkg/metrics"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/events"
	"github.com/redis/go-redis/v9"
)

// StreamPublisher appends interaction events to a Redis stream.
// Each entry carries the JSON event in the "payload" field.
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
	log    *slog.Logger
}

func NewStreamPublisher(client *redis.Client, stream string, maxLen int64, log *slog.Logger) *StreamPublisher {
	return &StreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		log:    log,
	}
}

var _ events.IPublisher = (*StreamPublisher)(nil)

func (p *StreamPublisher) Publish(ctx context.Context, event domain.InteractionEvent) error {
	err := p.publish(ctx, event)
	metrics.Global().PublishedEvents.WithLabelValues("redis", metrics.Result(err)).Inc()
	return err
}

func (p *StreamPublisher) publish(ctx context.Context, event domain.InteractionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"kind":    string(event.Kind),
			"payload": payload,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("redis xadd failed [stream=%s]: %w", p.stream, err)
	}

	p.log.Debug("event appended to stream",
		"stream", p.stream,
		"entry_id", id,
		"kind", event.Kind,
		"record_id", event.RecordID,
	)
	return nil
}

// Close closes the underlying client
func (p *StreamPublisher) Close() error {
	return p.client.Close()
}
