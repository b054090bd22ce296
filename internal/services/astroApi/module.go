package astroApi

import (
	"context"
	"fmt"

	astroApiAdapter "github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/astroApi"
	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/service"
)

// Service implements IAstroAPIService on top of the VedAstro client
type Service struct {
	client *astroApiAdapter.Client
}

func New(client *astroApiAdapter.Client) service.IAstroAPIService {
	return &Service{
		client: client,
	}
}

func (s *Service) ChartSVG(ctx context.Context, user *domain.User) (string, error) {
	return s.client.FetchChartSVG(ctx, user)
}

func (s *Service) MatchReport(ctx context.Context, user1, user2 *domain.User) (string, error) {
	return s.client.FetchMatchReport(ctx, user1, user2)
}

// ChartSummary fetches planet and house data and keeps only what the insight prompt needs
func (s *Service) ChartSummary(ctx context.Context, user *domain.User) (domain.ChartSummary, error) {
	timeSpec := user.TimeSpec()

	planets, err := s.client.FetchPlanetData(ctx, user.Place, timeSpec)
	if err != nil {
		return domain.ChartSummary{}, fmt.Errorf("fetch planet data: %w", err)
	}

	houses, err := s.client.FetchHouseData(ctx, user.Place, timeSpec)
	if err != nil {
		return domain.ChartSummary{}, fmt.Errorf("fetch house data: %w", err)
	}

	return domain.ChartSummary{
		Planets: ProjectPlanets(planets),
		Houses:  ProjectHouses(houses),
	}, nil
}

// ProjectPlanets maps planet name -> {House, IsBenefic, Conjunct}
func ProjectPlanets(resp *astroApiAdapter.PlanetDataResponse) map[string]domain.PlanetSummary {
	out := make(map[string]domain.PlanetSummary)
	for _, entry := range resp.Payload.AllPlanetData {
		for name, p := range entry {
			conjunct := p.PlanetsInConjunction
			if conjunct == nil {
				conjunct = []any{}
			}
			out[name] = domain.PlanetSummary{
				House:     p.HousePlanetOccupiesBasedOnSign,
				IsBenefic: p.IsPlanetBenefic,
				Conjunct:  conjunct,
			}
		}
	}
	return out
}

// ProjectHouses maps house name -> {Lord, Sign}
func ProjectHouses(resp *astroApiAdapter.HouseDataResponse) map[string]domain.HouseSummary {
	out := make(map[string]domain.HouseSummary)
	for _, entry := range resp.Payload.AllHouseData {
		for name, h := range entry {
			var summary domain.HouseSummary
			if h.LordOfHouse != nil {
				summary.Lord = h.LordOfHouse.Name
			}
			if h.HouseRasiSign != nil {
				summary.Sign = h.HouseRasiSign.Name
			}
			out[name] = summary
		}
	}
	return out
}
