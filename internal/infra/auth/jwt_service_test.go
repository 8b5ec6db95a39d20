package auth

import (
	"testing"
	"time"

	"geoalert/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_service_secret_key_very_long"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{ServiceSecret: secret, TokenTTL: ttl}}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	token, err := tokenSvc.IssueServiceToken("point-workflow")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenSvc.ValidateServiceToken(token)
	require.NoError(t, err)
	assert.Equal(t, "point-workflow", claims.Service)
	assert.Equal(t, "point-workflow", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	assert.Equal(t, time.Hour, tokenSvc.TokenTTL())
}

func TestJWTService_ZeroTTLHasNoExpiry(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig(testSecret, 0))
	require.NoError(t, err)

	token, err := tokenSvc.IssueServiceToken("point-workflow")
	require.NoError(t, err)

	claims, err := tokenSvc.ValidateServiceToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another_secret_key_very_long", time.Hour))
	require.NoError(t, err)
	foreign, err := other.IssueServiceToken("point-workflow")
	require.NoError(t, err)

	expiredSvc := &jwtService{
		secret: []byte(testSecret),
		ttl:    time.Minute,
		now:    func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expired, err := expiredSvc.IssueServiceToken("point-workflow")
	require.NoError(t, err)

	noSvc, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"svc": "x"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"expired", expired},
		{"missing svc claim", noSvc},
		{"unexpected algorithm", hs512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokenSvc.ValidateServiceToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig("short", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_IssueRequiresServiceName(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig(testSecret, time.Hour))
	require.NoError(t, err)

	_, err = tokenSvc.IssueServiceToken("  ")
	assert.Error(t, err)
}
