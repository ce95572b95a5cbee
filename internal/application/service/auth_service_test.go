package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amr-khaled0p/lazez2/pkg/apperror"
	"github.com/amr-khaled0p/lazez2/pkg/oauth"
	"github.com/amr-khaled0p/lazez2/pkg/utils"
)

func newTestAuth(t *testing.T) *AuthService {
	env := newTestEnv(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	google := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{})
	return NewAuthService(env.userRepo, jwtManager, google)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	out, err := svc.Register(ctx, &RegisterInput{
		Name:     "Mona",
		Email:    "  Mona@Example.COM ",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "mona@example.com", out.User.Email)
	assert.False(t, out.User.IsAdmin)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	login, err := svc.Login(ctx, &LoginInput{Email: "mona@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Mona", Email: "mona@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Name: "Mona 2", Email: "MONA@example.com", Password: "othersecret"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "Mona", Email: "mona@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "mona@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "ghost@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestAuth(t)
	ctx := context.Background()

	out, err := svc.Register(ctx, &RegisterInput{Name: "Mona", Email: "mona@example.com", Password: "supersecret"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestGoogleAuthURLUnconfigured(t *testing.T) {
	svc := newTestAuth(t)

	_, err := svc.GoogleAuthURL("state")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
