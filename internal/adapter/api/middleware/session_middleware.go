package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"mados/internal/domain/service"
	"mados/pkg/errors"
	"mados/pkg/response"
)

// ContextUserID is the echo context key holding the current user id.
const ContextUserID = "uid"

type SessionMiddleware struct {
	tokens service.TokenService
}

func NewSessionMiddleware(tokens service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
	}
}

// Authenticate rejects requests without a valid session token.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set(ContextUserID, userID)
		return next(c)
	}
}

// Optional sets the user id when a valid token is present and carries on
// anonymously otherwise.
func (m *SessionMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := BearerToken(c); ok {
			if userID, err := m.tokens.Verify(token); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		return next(c)
	}
}

// BearerToken reads the Authorization header. Browsers cannot set headers
// on a websocket handshake, so a token query parameter is accepted too.
func BearerToken(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if token := c.QueryParam("token"); token != "" {
		return token, true
	}
	return "", false
}

// UserID returns the id set by Authenticate or Optional, or "".
func UserID(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	return userID
}
