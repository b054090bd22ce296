package astro

import (
	"context"
	"fmt"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/usecases/astro/texts"
)

// DailyHoroscope asks the model for a short horoscope based on the stored birth details
func (s *Service) DailyHoroscope(ctx context.Context, userID string) (string, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.askModel(ctx, user, texts.HoroscopePrompt(user), domain.QuestionDailyHoroscope, domain.InteractionHoroscope)
}

// PersonalizedInsights summarizes planet and house data, then asks the model for an insight
func (s *Service) PersonalizedInsights(ctx context.Context, userID string) (string, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	summary, err := s.AstroAPIService.ChartSummary(ctx, user)
	if err != nil {
		return "", fmt.Errorf("personalized insights: %w", err)
	}

	prompt, err := texts.InsightPrompt(user, summary)
	if err != nil {
		return "", fmt.Errorf("build insight prompt: %w", err)
	}

	return s.askModel(ctx, user, prompt, domain.QuestionPersonalizedInsights, domain.InteractionInsight)
}

// AskAstrologer answers a free-form question. The question is stored verbatim.
func (s *Service) AskAstrologer(ctx context.Context, userID, question string) (string, error) {
	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.askModel(ctx, user, texts.AskPrompt(user, question), question, domain.InteractionAsk)
}

// askModel runs the prompt and appends the exchange to user_queries.
// If the audit insert fails the generated text is discarded.
func (s *Service) askModel(ctx context.Context, user *domain.User, prompt, question string, kind domain.InteractionKind) (string, error) {
	answer, err := s.LLMService.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	q := &domain.UserQuery{
		ID:        s.newID(),
		UserID:    user.ID,
		Question:  question,
		Response:  answer,
		Timestamp: s.now(),
	}
	if err := s.QueryRepo.Create(ctx, q); err != nil {
		return "", err
	}

	s.Log.Info("model answered", "user_id", user.ID, "query_id", q.ID, "kind", kind)
	s.publish(ctx, kind, user.ID, q.ID)

	return answer, nil
}
