package repository

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// IUserRepo stores registered users
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
