package repository

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// IChartRepo appends generated charts
type IChartRepo interface {
	Create(ctx context.Context, chart *domain.AstroChart) error
}
