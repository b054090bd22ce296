package domain

import "time"

type InteractionKind string

const (
	InteractionRegister      InteractionKind = "register"
	InteractionChart         InteractionKind = "chart"
	InteractionCompatibility InteractionKind = "compatibility"
	InteractionHoroscope     InteractionKind = "daily_horoscope"
	InteractionInsight       InteractionKind = "personalized_insights"
	InteractionAsk           InteractionKind = "ask_astrologer"
)

// InteractionEvent is emitted after a row has been persisted.
type InteractionEvent struct {
	ID        string          `json:"id"`
	Kind      InteractionKind `json:"kind"`
	UserID    string          `json:"user_id"`
	RecordID  string          `json:"record_id"`
	CreatedAt time.Time       `json:"created_at"`
}
