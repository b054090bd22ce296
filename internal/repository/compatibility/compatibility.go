package compatibilityRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	ports "github.com/SagarBajaj14/CelestAI.io/internal/ports/repository"
)

type compatibilityColumns struct {
	TableName string
	ID        string
	User1ID   string
	User2ID   string
	Result    string
	Timestamp string
}

type Repository struct {
	db      persistence.RecordStore
	Log     *slog.Logger
	columns compatibilityColumns
}

func New(db persistence.RecordStore, log *slog.Logger) ports.ICompatibilityRepo {
	return &Repository{
		db:  db,
		Log: log,
		columns: compatibilityColumns{
			TableName: "compatibility_checks",
			ID:        "id",
			User1ID:   "user1_id",
			User2ID:   "user2_id",
			Result:    "result",
			Timestamp: "timestamp",
		},
	}
}

func (r *Repository) Create(ctx context.Context, check *domain.CompatibilityCheck) error {
	err := r.db.InsertRecord(ctx, r.columns.TableName, persistence.Record{
		r.columns.ID:        check.ID,
		r.columns.User1ID:   check.User1ID,
		r.columns.User2ID:   check.User2ID,
		r.columns.Result:    check.Result,
		r.columns.Timestamp: check.Timestamp.UTC(),
	})
	if err != nil {
		r.Log.Error("failed to store compatibility check",
			"error", err,
			"check_id", check.ID,
			"user1_id", check.User1ID,
			"user2_id", check.User2ID)
		return fmt.Errorf("failed to store compatibility check: %w", err)
	}
	r.Log.Debug("compatibility check stored", "check_id", check.ID)
	return nil
}
