// Package middleware provides the JWT guard for protected routes. Tokens are
// issued by an external identity service; this service only verifies the
// signature and reads the acting user id from the claims.
package middleware

import (
	"errors"
	"fmt"

	"github.com/fintrack/ledger/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoUserContext is returned when a handler runs without a verified token
// in the request context.
var ErrNoUserContext = errors.New("missing user context")

// JwtProtected returns the middleware that verifies the Bearer token and
// stores it in c.Locals("user").
func JwtProtected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	status := fiber.StatusUnauthorized
	if err.Error() == "Missing or malformed JWT" {
		status = fiber.StatusBadRequest
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Unauthorized",
		"status": status,
		"detail": err.Error(),
	})
}

// UserIDFromContext extracts the acting user id from the verified token. The
// id is read from the "sub" claim, falling back to "user_id".
func UserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, ErrNoUserContext
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrNoUserContext
	}
	raw, ok := claims["sub"].(string)
	if !ok || raw == "" {
		raw, ok = claims["user_id"].(string)
		if !ok {
			return uuid.Nil, ErrNoUserContext
		}
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return id, nil
}
