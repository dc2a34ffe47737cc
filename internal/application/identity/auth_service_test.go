package identity

import (
	"context"
	"testing"
	"time"

	"github.com/finsight/backend/internal/domain/identity"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/finsight/backend/internal/infrastructure/auth"
	"github.com/finsight/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock implementations

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "finsight-test",
		MaxRefreshCount:        10,
	})
}

func newTestAuthService(repo identity.UserRepository) (*AuthService, *auth.InMemoryTokenBlacklist) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, newTestJWTService(), blacklist, zap.NewNop()), blacklist
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registers a new account", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		info, err := svc.Register(context.Background(), RegisterInput{
			Email:       "new@example.com",
			Password:    "correct-horse",
			DisplayName: "New User",
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", info.Email)
		assert.Equal(t, "user", info.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:       "taken@example.com",
			Password:    "correct-horse",
			DisplayName: "Someone",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects weak password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:       "weak@example.com",
			Password:    "short",
			DisplayName: "Weak",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	user, err := identity.NewUser("login@example.com", "correct-horse", "Login User")
	require.NoError(t, err)

	t.Run("valid credentials return tokens", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "login@example.com").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		result, err := svc.Login(context.Background(), LoginInput{
			Email:    "login@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "login@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "login@example.com",
			Password: "wrong",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(context.Background(), LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	user, err := identity.NewUser("refresh@example.com", "correct-horse", "Refresh User")
	require.NoError(t, err)

	login := func(t *testing.T, svc *AuthService, repo *mockUserRepository) *LoginResult {
		repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)
		result, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "correct-horse"})
		require.NoError(t, err)
		return result
	}

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)
		result := login(t, svc, repo)

		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		refreshed, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: result.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, result.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("garbage refresh token is rejected", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, _ := newTestAuthService(repo)

		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "garbage"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
	})

	t.Run("revoked session cannot refresh", func(t *testing.T) {
		repo := new(mockUserRepository)
		svc, blacklist := newTestAuthService(repo)
		result := login(t, svc, repo)

		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), user.ID.String(), time.Hour))

		_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: result.RefreshToken})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo := new(mockUserRepository)
	svc, blacklist := newTestAuthService(repo)

	jti := uuid.New().String()
	err := svc.Logout(context.Background(), LogoutInput{
		UserID:         uuid.New(),
		TokenJTI:       jti,
		TokenExpiresAt: time.Now().Add(15 * time.Minute),
	})
	require.NoError(t, err)

	blacklisted, err := blacklist.IsBlacklisted(context.Background(), jti)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
