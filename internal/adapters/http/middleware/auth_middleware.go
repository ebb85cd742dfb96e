package middleware

import (
	"strings"

	"waqf-task-tracker/internal/config"
	"waqf-task-tracker/internal/pkg/jwt"
	"waqf-task-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "token"

// Protect creates the session guard. It accepts the session cookie first
// and falls back to a Bearer header for non-cookie clients, then stores
// the authenticated user id in the request context.
func Protect(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return response.Unauthorized(c, "Not authorized, no token")
		}

		claims, err := jwt.ValidateSessionToken(token, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Session expired")
			}
			return response.Unauthorized(c, "Not authorized")
		}

		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}

// sessionToken extracts the session token from cookie or Authorization header
func sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
