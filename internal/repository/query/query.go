package queryRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	ports "github.com/SagarBajaj14/CelestAI.io/internal/ports/repository"
)

type queryColumns struct {
	TableName string
	ID        string
	UserID    string
	Question  string
	Response  string
	Timestamp string
}

type Repository struct {
	db      persistence.RecordStore
	Log     *slog.Logger
	columns queryColumns
}

func New(db persistence.RecordStore, log *slog.Logger) ports.IQueryRepo {
	return &Repository{
		db:  db,
		Log: log,
		columns: queryColumns{
			TableName: "user_queries",
			ID:        "id",
			UserID:    "user_id",
			Question:  "question",
			Response:  "response",
			Timestamp: "timestamp",
		},
	}
}

// Create appends a question/answer pair. Question is either the literal text or a sentinel.
func (r *Repository) Create(ctx context.Context, q *domain.UserQuery) error {
	err := r.db.InsertRecord(ctx, r.columns.TableName, persistence.Record{
		r.columns.ID:        q.ID,
		r.columns.UserID:    q.UserID,
		r.columns.Question:  q.Question,
		r.columns.Response:  q.Response,
		r.columns.Timestamp: q.Timestamp.UTC(),
	})
	if err != nil {
		r.Log.Error("failed to store user query",
			"error", err,
			"query_id", q.ID,
			"user_id", q.UserID)
		return fmt.Errorf("failed to store user query: %w", err)
	}
	r.Log.Debug("user query stored", "query_id", q.ID, "user_id", q.UserID)
	return nil
}
