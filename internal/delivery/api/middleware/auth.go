package middleware

import (
	"log/slog"
	"strings"

	"geoalert/internal/delivery/api/response"
	deliverycontext "geoalert/internal/delivery/context"
	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const contextKeyCallerService = "caller_service"

// AuthMiddleware authenticates service-to-service calls with a bearer JWT.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the service token and records the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateServiceToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("[API] Rejected service token", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrUnauthorized)
		}

		c.Set(contextKeyCallerService, claims.Service)

		return next(c)
	}
}

// GetCallerService returns the svc claim of the authenticated caller.
func GetCallerService(c echo.Context) (string, bool) {
	svc, ok := c.Get(contextKeyCallerService).(string)

	return svc, ok && svc != ""
}
