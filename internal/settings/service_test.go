package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, userID uuid.UUID) (*AccountSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AccountSettings), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, settings *AccountSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func TestUpdateStampsUserID(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*settings.AccountSettings")).Return(nil)

	svc := NewService(repo)
	err := svc.Update(context.Background(), userID, &AccountSettings{Language: "fr"})

	assert.NoError(t, err)
	saved := repo.Calls[0].Arguments.Get(1).(*AccountSettings)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "fr", saved.Language)
}

func TestDigestEnabledFollowsPreference(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("Get", mock.Anything, userID).
		Return(&AccountSettings{UserID: userID, EmailDigest: false}, nil)

	svc := NewService(repo)
	assert.False(t, svc.DigestEnabled(context.Background(), userID))
}

func TestLiveToastsFollowPreference(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("Get", mock.Anything, userID).
		Return(&AccountSettings{UserID: userID, LiveToasts: false}, nil)

	svc := NewService(repo)
	assert.False(t, svc.LiveToastsEnabled(context.Background(), userID))
}

func TestDigestEnabledDefaultsOnError(t *testing.T) {
	repo := new(MockRepository)
	userID := uuid.New()
	repo.On("Get", mock.Anything, userID).Return(nil, errors.New("db down"))

	svc := NewService(repo)
	assert.True(t, svc.DigestEnabled(context.Background(), userID),
		"a read failure must not silence the digest")
}
