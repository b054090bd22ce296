package astro

import (
	"context"
	"fmt"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
)

// RegisterUser stores the birth details under a fresh id. Calendar fields are not validated.
func (s *Service) RegisterUser(ctx context.Context, details domain.BirthDetails) (string, error) {
	user := &domain.User{
		ID:       s.newID(),
		Name:     details.Name,
		Place:    details.Place,
		Time:     details.Time,
		Day:      details.Day,
		Month:    details.Month,
		Year:     details.Year,
		Timezone: details.Timezone,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("register user: %w", err)
	}

	s.Log.Info("user registered", "user_id", user.ID)
	s.publish(ctx, domain.InteractionRegister, user.ID, user.ID)

	return user.ID, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.UserRepo.GetByID(ctx, userID)
}
