package astroController

// Pointer fields let "required" reject missing keys while still accepting empty strings.

type RegisterUserRequest struct {
	Name     *string `json:"name" binding:"required"`
	Place    *string `json:"place" binding:"required"`
	Time     *string `json:"time" binding:"required"`  // HH:MM
	Day      *string `json:"day" binding:"required"`   // DD
	Month    *string `json:"month" binding:"required"` // MM
	Year     *string `json:"year" binding:"required"`  // YYYY
	Timezone *string `json:"timezone" binding:"required"`
}

type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type MatchRequest struct {
	User1ID *string `json:"user1_id" binding:"required"`
	User2ID *string `json:"user2_id" binding:"required"`
}

type MatchResponse struct {
	MatchReport string `json:"match_report"`
}

type AskRequest struct {
	Question *string `json:"question" binding:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type HoroscopeResponse struct {
	DailyHoroscope string `json:"daily_horoscope"`
}

type InsightResponse struct {
	PersonalizedInsight string `json:"personalized_insight"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
