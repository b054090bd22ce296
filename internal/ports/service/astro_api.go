package service

import (
	"context"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// IAstroAPIService talks to the external chart calculation API
type IAstroAPIService interface {
	ChartSVG(ctx context.Context, user *domain.User) (string, error)
	MatchReport(ctx context.Context, user1, user2 *domain.User) (string, error)
	ChartSummary(ctx context.Context, user *domain.User) (domain.ChartSummary, error)
}
