package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceClaims identifies the calling workflow of a service token.
type ServiceClaims struct {
	Service string `json:"svc"`
	jwt.RegisteredClaims
}

// TokenService issues and validates service-to-service bearer tokens.
type TokenService interface {
	// IssueServiceToken signs a token for the named calling service.
	IssueServiceToken(serviceName string) (string, error)

	// ValidateServiceToken checks signature and expiry and returns the claims.
	ValidateServiceToken(tokenString string) (*ServiceClaims, error)

	// TokenTTL returns how long issued tokens stay valid. Zero means no expiry.
	TokenTTL() time.Duration
}
