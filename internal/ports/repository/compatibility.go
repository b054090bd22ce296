package repository

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// ICompatibilityRepo appends match reports
type ICompatibilityRepo interface {
	Create(ctx context.Context, check *domain.CompatibilityCheck) error
}
