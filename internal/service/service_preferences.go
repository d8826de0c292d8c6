package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
)

// preferencesService is the concrete implementation of PreferencesService.
// Preferences live as columns on the user row; this service only projects
// and overwrites them.
type preferencesService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewPreferencesService constructs a PreferencesService backed by the given
// repository.
func NewPreferencesService(userRepository store.UserRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Get returns the user's preferences with defaults applied for unset values.
func (s *preferencesService) Get(ctx context.Context, userID int64) (models.UserPreferences, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user lookup failed")
		return models.UserPreferences{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return models.PreferencesOf(user), nil
}

// Update overwrites the preference fields and returns the result with
// defaults applied. Omitted string fields fall back to their defaults.
func (s *preferencesService) Update(ctx context.Context, userID int64, request models.UpdatePreferencesRequest) (models.UserPreferences, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.UpdatePreferences(ctx, userID, request, time.Now())
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("updating preferences failed")
		return models.UserPreferences{}, fmt.Errorf("updating preferences failed: %w", err)
	}

	return models.PreferencesOf(user), nil
}
