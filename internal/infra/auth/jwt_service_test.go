package auth

import (
	"testing"
	"time"

	"savor/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{AccessTTL: time.Minute},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, svc)

	userID := uuid.New()

	token, err := svc.IssueAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"tampered", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.tampered.signature"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tc.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestTokenConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestTokenConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestTokenConfig("test_access_secret_key_very_long_for_testing")
	cfg.Token.AccessTTL = -time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
