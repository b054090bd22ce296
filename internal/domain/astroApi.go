package domain

import (
	"fmt"
	"time"
)

// AstroChart is one generated chart. Rows are never deduplicated.
type AstroChart struct {
	ID       string `json:"id" db:"id"`
	UserID   string `json:"user_id" db:"user_id"`
	SVGChart string `json:"svg_chart" db:"svg_chart"`
}

// ObjectKey is where the chart is archived in object storage
func (c *AstroChart) ObjectKey() string {
	return fmt.Sprintf("charts/%s/%s.svg", c.UserID, c.ID)
}

// CompatibilityCheck stores a raw match report for a pair of users.
type CompatibilityCheck struct {
	ID        string    `json:"id" db:"id"`
	User1ID   string    `json:"user1_id" db:"user1_id"`
	User2ID   string    `json:"user2_id" db:"user2_id"`
	Result    string    `json:"result" db:"result"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// PlanetSummary is the minimal projection of one planet entry sent to the model.
type PlanetSummary struct {
	House     any `json:"House"`
	IsBenefic any `json:"IsBenefic"`
	Conjunct  any `json:"Conjunct"`
}

// HouseSummary is the minimal projection of one house entry sent to the model.
type HouseSummary struct {
	Lord *string `json:"Lord"`
	Sign *string `json:"Sign"`
}

// ChartSummary bounds the planetary data that ends up in a prompt.
type ChartSummary struct {
	Planets map[string]PlanetSummary
	Houses  map[string]HouseSummary
}
