// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"geoalert/config"
	"geoalert/internal/domain/service"
)

// minSecretLength keeps HS256 keys out of brute-force range.
const minSecretLength = 16

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Shared secret with the point workflow.
	ttl    time.Duration // Zero issues tokens without exp.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || len(strings.TrimSpace(cfg.Auth.ServiceSecret)) < minSecretLength {
		return nil, errors.Errorf("auth.serviceSecret must be at least %d characters", minSecretLength)
	}

	return &jwtService{
		secret: []byte(cfg.Auth.ServiceSecret),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// IssueServiceToken creates a signed token carrying the caller name in the svc claim.
func (s *jwtService) IssueServiceToken(serviceName string) (string, error) {
	if strings.TrimSpace(serviceName) == "" {
		return "", errors.New("service name is required")
	}

	now := s.now()
	claims := service.ServiceClaims{
		Service: serviceName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  serviceName,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ValidateServiceToken checks the validity of a token string against the shared secret.
func (s *jwtService) ValidateServiceToken(tokenString string) (*service.ServiceClaims, error) {
	claims := &service.ServiceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid service token")
	}
	if !token.Valid {
		return nil, errors.New("invalid service token")
	}
	if claims.Service == "" {
		return nil, errors.New("service token has no svc claim")
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime for service tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
