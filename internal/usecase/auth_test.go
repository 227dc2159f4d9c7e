//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fablab-scheduler/internal/domain/user"
	"fablab-scheduler/internal/pkg/jwt"
	"fablab-scheduler/internal/pkg/password"
	"fablab-scheduler/internal/usecase"
	"fablab-scheduler/internal/usecase/readmodel"
	"fablab-scheduler/tests/mock/repomock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthUseCase(t *testing.T) (usecase.AuthUseCase, *repomock.MockUserRepository, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockUserRepository(ctrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	return usecase.NewAuthUseCase(repo, jwtService), repo, jwtService
}

func mustCredentials(t *testing.T, email, pass string) user.Credentials {
	t.Helper()
	c, err := user.NewCredentials(email, pass)
	require.NoError(t, err)
	return c
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	plaintext := "password123"
	hashed, err := password.HashPassword(plaintext)
	require.NoError(t, err)

	storedUser := &readmodel.AuthorizedUserRM{
		ID:       uuid.New(),
		Email:    "member@example.com",
		Role:     "member",
		IsActive: true,
	}

	t.Run("issues a verifiable token and stamps last login", func(t *testing.T) {
		uc, repo, jwtService := newAuthUseCase(t)
		creds := mustCredentials(t, storedUser.Email, plaintext)

		repo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).
			Return(storedUser, hashed, nil)
		repo.EXPECT().UpdateLastLogin(gomock.Any(), storedUser.ID).Return(nil)

		token, rm, err := uc.Login(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, storedUser.Email, rm.Email)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, claims.UserID)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		creds := mustCredentials(t, storedUser.Email, "wrong-password")

		repo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).
			Return(storedUser, hashed, nil)

		_, _, err := uc.Login(ctx, creds)
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		creds := mustCredentials(t, "ghost@example.com", plaintext)

		repo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).
			Return(nil, "", errors.New("no rows"))

		_, _, err := uc.Login(ctx, creds)
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		creds := mustCredentials(t, storedUser.Email, plaintext)
		inactive := *storedUser
		inactive.IsActive = false

		repo.EXPECT().FindByEmail(gomock.Any(), creds.Email()).
			Return(&inactive, hashed, nil)

		_, _, err := uc.Login(ctx, creds)
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}

func TestAuthGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found and active", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		stored := &readmodel.AuthorizedUserRM{ID: uuid.New(), Email: "member@example.com", Role: "member", IsActive: true}
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		rm, err := uc.GetCurrentUser(ctx, stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.Email, rm.Email)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("no rows"))

		_, err := uc.GetCurrentUser(ctx, id)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("inactive account", func(t *testing.T) {
		uc, repo, _ := newAuthUseCase(t)
		stored := &readmodel.AuthorizedUserRM{ID: uuid.New(), Email: "member@example.com", Role: "member", IsActive: false}
		repo.EXPECT().FindByID(gomock.Any(), stored.ID).Return(stored, nil)

		_, err := uc.GetCurrentUser(ctx, stored.ID)
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}
