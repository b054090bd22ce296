package domain

import "time"

// Question sentinels for templated model interactions.
const (
	QuestionDailyHoroscope       = "daily_horoscope"
	QuestionPersonalizedInsights = "personalized_insights"
)

// UserQuery is the audit row of one language-model interaction.
type UserQuery struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Question  string    `json:"question" db:"question"`
	Response  string    `json:"response" db:"response"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
