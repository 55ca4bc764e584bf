package impl

import (
	"context"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Login_SessionLimit_UnderLimit(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	// With a limit configured, count and insert run in one transaction.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestUserService_Login_SessionLimit_Exceeded(t *testing.T) {
	fx := createTestUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(3, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}
