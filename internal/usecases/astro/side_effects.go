package astro

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// publish emits an interaction event. Failures are logged and never reach the caller.
func (s *Service) publish(ctx context.Context, kind domain.InteractionKind, userID, recordID string) {
	if s.Publisher == nil {
		return
	}

	event := domain.InteractionEvent{
		ID:        s.newID(),
		Kind:      kind,
		UserID:    userID,
		RecordID:  recordID,
		CreatedAt: s.now(),
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.Log.Warn("failed to publish interaction event",
			"error", err,
			"kind", kind,
			"user_id", userID,
			"record_id", recordID,
		)
	}
}

// archiveChart copies the SVG to object storage when an archive is configured
func (s *Service) archiveChart(ctx context.Context, chart *domain.AstroChart) {
	if s.ChartArchive == nil {
		return
	}

	key := chart.ObjectKey()
	if err := s.ChartArchive.PutFile(ctx, key, []byte(chart.SVGChart), "image/svg+xml"); err != nil {
		s.Log.Warn("failed to archive chart",
			"error", err,
			"chart_id", chart.ID,
			"key", key,
		)
	}
}
