// Package middleware contains echo middlewares for the operator API.
package middleware

import (
	"crypto/subtle"
	"log/slog"

	"bizradar/config"
	"bizradar/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "X-API-Key"

// AuthMiddleware guards the operator API with a static key. The radar is a
// single-operator tool, so a shared token from the config replaces a full
// account system. An empty token disables the check for local use.
type AuthMiddleware struct {
	token  string
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	if cfg.HTTP.APIToken == "" {
		logger.Warn("API token is empty, operator API is unauthenticated")
	}

	return &AuthMiddleware{
		token:  cfg.HTTP.APIToken,
		logger: logger,
	}
}

// Authenticate validates the static API key header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.token == "" {
			return next(c)
		}

		provided := c.Request().Header.Get(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			return response.Unauthorized(c, "INVALID_API_KEY", "Missing or invalid API key")
		}

		return next(c)
	}
}
