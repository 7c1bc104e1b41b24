// Package auth validates the session identity the external authentication
// provider attaches to each request. The provider signs a session token; this
// package only verifies it and exposes the board member's identity to the
// handlers. There is no local user store.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/charis-foundation/board-backend/model"
)

// SessionCookie is the cookie the auth provider sets on sign-in.
const SessionCookie = "session_token"

// localsMemberID is the Locals key holding the authenticated member identity.
const localsMemberID = "member_id"

// ContextKey is the type used for identity values forwarded into
// context.Context (the GraphQL handler does this).
type ContextKey string

// MemberKey carries the authenticated member identity in a context.Context.
const MemberKey ContextKey = "member_id"

// RequireSession blocks any request without a valid session token. The token
// is read from the Authorization bearer header or the session cookie and
// verified against the shared session secret. Failures short-circuit with the
// uniform unauthorized envelope before any store access happens.
func RequireSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(SessionCookie)
		}
		if token == "" {
			return unauthorized(c)
		}

		claims, err := ValidateSessionToken(token, secret)
		if err != nil || claims.Subject == "" {
			return unauthorized(c)
		}

		c.Locals(localsMemberID, claims.Subject)
		return c.Next()
	}
}

// MemberID returns the authenticated member identity for the request, or ""
// when the request did not pass RequireSession.
func MemberID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsMemberID).(string)
	return id
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(model.Fail("Unauthorized"))
}
