package astro

import (
	"context"
	"fmt"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// ChartResult is a generated chart and the id of the row it was stored under
type ChartResult struct {
	ID  string
	SVG string
}

// GenerateChart fetches the chart SVG and appends it to astro_data.
// Every call produces a new row.
func (s *Service) GenerateChart(ctx context.Context, userID string) (*ChartResult, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	svg, err := s.AstroAPIService.ChartSVG(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("generate chart: %w", err)
	}

	chart := &domain.AstroChart{
		ID:       s.newID(),
		UserID:   user.ID,
		SVGChart: svg,
	}
	if err := s.ChartRepo.Create(ctx, chart); err != nil {
		return nil, err
	}

	s.Log.Info("chart generated", "user_id", user.ID, "chart_id", chart.ID)
	s.publish(ctx, domain.InteractionChart, user.ID, chart.ID)
	s.archiveChart(ctx, chart)

	return &ChartResult{ID: chart.ID, SVG: svg}, nil
}

// MatchCompatibility fetches the match report for two registered users
func (s *Service) MatchCompatibility(ctx context.Context, user1ID, user2ID string) (string, error) {
	user1, err := s.UserRepo.GetByID(ctx, user1ID)
	if err != nil {
		return "", err
	}
	user2, err := s.UserRepo.GetByID(ctx, user2ID)
	if err != nil {
		return "", err
	}

	report, err := s.AstroAPIService.MatchReport(ctx, user1, user2)
	if err != nil {
		return "", fmt.Errorf("match compatibility: %w", err)
	}

	check := &domain.CompatibilityCheck{
		ID:        s.newID(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		Result:    report,
		Timestamp: s.now(),
	}
	if err := s.CompatibilityRepo.Create(ctx, check); err != nil {
		return "", err
	}

	s.Log.Info("compatibility checked", "check_id", check.ID, "user1_id", user1ID, "user2_id", user2ID)
	s.publish(ctx, domain.InteractionCompatibility, user1ID, check.ID)

	return report, nil
}
