package chartRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	ports "github.com/SagarBajaj14/CelestAI.io/internal/ports/repository"
)

type chartColumns struct {
	TableName string
	ID        string
	UserID    string
	SVGChart  string
}

type Repository struct {
	db      persistence.RecordStore
	Log     *slog.Logger
	columns chartColumns
}

func New(db persistence.RecordStore, log *slog.Logger) ports.IChartRepo {
	return &Repository{
		db:  db,
		Log: log,
		columns: chartColumns{
			TableName: "astro_data",
			ID:        "id",
			UserID:    "user_id",
			SVGChart:  "svg_chart",
		},
	}
}

// Create appends a chart row. Repeated charts for one user are kept as separate rows.
func (r *Repository) Create(ctx context.Context, chart *domain.AstroChart) error {
	err := r.db.InsertRecord(ctx, r.columns.TableName, persistence.Record{
		r.columns.ID:       chart.ID,
		r.columns.UserID:   chart.UserID,
		r.columns.SVGChart: chart.SVGChart,
	})
	if err != nil {
		r.Log.Error("failed to store chart",
			"error", err,
			"chart_id", chart.ID,
			"user_id", chart.UserID)
		return fmt.Errorf("failed to store chart: %w", err)
	}
	r.Log.Debug("chart stored", "chart_id", chart.ID, "user_id", chart.UserID, "bytes", len(chart.SVGChart))
	return nil
}
