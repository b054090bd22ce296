package repository

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// IQueryRepo appends audit rows of model interactions
type IQueryRepo interface {
	Create(ctx context.Context, query *domain.UserQuery) error
}
