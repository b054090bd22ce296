package texts

import (
	"encoding/json"
	"fmt"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

const (
	horoscopeTemplate = "Generate a short and insightful daily horoscope for %s, " +
		"born on %s-%s-%s at %s " +
		"in %s. Use professional astrologer tone."

	insightTemplate = "You are a professional Vedic astrologer. Generate a simple, personalized insight for " +
		"%s (DOB: %s-%s-%s at %s), " +
		"with planetary data %s and house data %s."

	askTemplate = "User Info:\n" +
		"Name: %s\n" +
		"DOB: %s-%s-%s at %s\n" +
		"Place: %s (%s)\n" +
		"You are a professional Vedic astrologer.\n\n" +
		"Question: \"%s\"\n" +
		"Answer:"
)

func HoroscopePrompt(u *domain.User) string {
	return fmt.Sprintf(horoscopeTemplate, u.Name, u.Day, u.Month, u.Year, u.Time, u.Place)
}

// InsightPrompt embeds the planet and house projections as JSON
func InsightPrompt(u *domain.User, summary domain.ChartSummary) (string, error) {
	planets, err := json.Marshal(summary.Planets)
	if err != nil {
		return "", fmt.Errorf("marshal planets: %w", err)
	}
	houses, err := json.Marshal(summary.Houses)
	if err != nil {
		return "", fmt.Errorf("marshal houses: %w", err)
	}
	return fmt.Sprintf(insightTemplate, u.Name, u.Day, u.Month, u.Year, u.Time, planets, houses), nil
}

func AskPrompt(u *domain.User, question string) string {
	return fmt.Sprintf(askTemplate, u.Name, u.Day, u.Month, u.Year, u.Time, u.Place, u.Timezone, question)
}
