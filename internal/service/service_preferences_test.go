package service

import (
	"context"
	"testing"
	"time"

	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/mock"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreferencesService_Get_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(models.User{
		ID:                          9,
		EnableNotificationReminders: true,
	}, nil)

	preferences, err := NewPreferencesService(users, logger.Nop()).Get(context.Background(), 9)
	require.NoError(t, err)

	assert.True(t, preferences.EnableNotificationReminders)
	assert.Equal(t, models.DefaultTaskDateNone, preferences.DefaultTaskDate)
	assert.Equal(t, models.DefaultFirstDayOfWeek, preferences.FirstDayOfWeek)
	assert.Equal(t, models.DefaultThemePreference, preferences.Theme)
}

func TestPreferencesService_Get_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	users.EXPECT().GetByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := NewPreferencesService(users, logger.Nop()).Get(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestPreferencesService_Update_ReturnsStoredValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	theme := "dark"
	firstDay := "monday"

	users.EXPECT().
		UpdatePreferences(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, request models.UpdatePreferencesRequest, _ time.Time) (models.User, error) {
			assert.True(t, request.AutoTransferOverdueTasks)
			return models.User{
				ID:                       userID,
				AutoTransferOverdueTasks: true,
				FirstDayOfWeek:           request.FirstDayOfWeek,
				Theme:                    request.Theme,
			}, nil
		})

	preferences, err := NewPreferencesService(users, logger.Nop()).Update(context.Background(), 9, models.UpdatePreferencesRequest{
		AutoTransferOverdueTasks: true,
		FirstDayOfWeek:           &firstDay,
		Theme:                    &theme,
	})
	require.NoError(t, err)

	assert.True(t, preferences.AutoTransferOverdueTasks)
	assert.Equal(t, "monday", preferences.FirstDayOfWeek)
	assert.Equal(t, "dark", preferences.Theme)
	assert.Equal(t, models.DefaultTaskDateNone, preferences.DefaultTaskDate, "unset field falls back to its default")
}
