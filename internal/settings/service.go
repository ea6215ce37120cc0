package settings

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*AccountSettings, error) {
	return s.repo.Get(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, settings *AccountSettings) error {
	settings.UserID = userID
	return s.repo.Save(ctx, settings)
}

// DigestEnabled reports whether the seller wants the daily digest email.
func (s *Service) DigestEnabled(ctx context.Context, userID uuid.UUID) bool {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return true
	}
	return settings.EmailDigest
}

// LiveToastsEnabled reports whether the seller wants live websocket pushes.
func (s *Service) LiveToastsEnabled(ctx context.Context, userID uuid.UUID) bool {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return true
	}
	return settings.LiveToasts
}
