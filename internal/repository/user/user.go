package userRepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	ports "github.com/SagarBajaj14/CelestAI.io/internal/ports/repository"
)

type userColumns struct {
	TableName string
	ID        string
	Name      string
	Place     string
	Time      string
	Day       string
	Month     string
	Year      string
	Timezone  string
}

type Repository struct {
	db      persistence.RecordStore
	Log     *slog.Logger
	columns userColumns
}

func New(db persistence.RecordStore, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName: "users",
		ID:        "id",
		Name:      "name",
		Place:     "place",
		Time:      "time",
		Day:       "day",
		Month:     "month",
		Year:      "year",
		Timezone:  "timezone",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// Create inserts a new user row; users are never updated afterwards
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.InsertRecord(ctx, r.columns.TableName, persistence.Record{
		r.columns.ID:       user.ID,
		r.columns.Name:     user.Name,
		r.columns.Place:    user.Place,
		r.columns.Time:     user.Time,
		r.columns.Day:      user.Day,
		r.columns.Month:    user.Month,
		r.columns.Year:     user.Year,
		r.columns.Timezone: user.Timezone,
	})
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.Log.Debug("user created successfully", "user_id", user.ID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetRecord(ctx, r.columns.TableName, r.columns.ID, id, &user)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.Log.Warn("user not found", "user_id", id)
			return nil, err
		}
		r.Log.Error("failed to get user by id",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	r.Log.Debug("user retrieved successfully", "user_id", id)
	return &user, nil
}
