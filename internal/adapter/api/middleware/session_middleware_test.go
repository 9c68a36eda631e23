package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens map[string]string

func (s staticTokens) Issue(userID string) (string, error) { return "tok-" + userID, nil }

func (s staticTokens) Verify(token string) (string, error) {
	if userID, ok := s[token]; ok {
		return userID, nil
	}
	return "", errors.New("invalid token")
}

func newContext(target, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
		wantOK bool
	}{
		{name: "header", target: "/", header: "Bearer abc", want: "abc", wantOK: true},
		{name: "wrong scheme", target: "/", header: "Basic abc"},
		{name: "empty token", target: "/", header: "Bearer "},
		{name: "query for websocket", target: "/v1/ws?token=xyz", want: "xyz", wantOK: true},
		{name: "header wins over query", target: "/?token=xyz", header: "Bearer abc", want: "abc", wantOK: true},
		{name: "nothing", target: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.target, tt.header)
			got, ok := BearerToken(c)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionMiddleware_Authenticate(t *testing.T) {
	m := NewSessionMiddleware(staticTokens{"good": "user-1"})

	var seen string
	next := func(c echo.Context) error {
		seen = UserID(c)
		return c.NoContent(http.StatusOK)
	}

	c, rec := newContext("/", "Bearer good")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", seen)

	seen = ""
	c, rec = newContext("/", "Bearer bad")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, seen)

	c, rec = newContext("/", "")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_Optional(t *testing.T) {
	m := NewSessionMiddleware(staticTokens{"good": "user-2"})

	calls := 0
	var seen string
	next := func(c echo.Context) error {
		calls++
		seen = UserID(c)
		return nil
	}

	c, _ := newContext("/", "Bearer bad")
	require.NoError(t, m.Optional(next)(c))
	assert.Empty(t, seen)

	c, _ = newContext("/", "Bearer good")
	require.NoError(t, m.Optional(next)(c))
	assert.Equal(t, "user-2", seen)
	assert.Equal(t, 2, calls)
}
