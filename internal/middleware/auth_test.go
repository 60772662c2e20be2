package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, header string) (uint, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var got uint
	handler := Auth(NewJWTAuthenticator("test-secret"))(func(c echo.Context) error {
		got = CurrentUserID(c)
		return nil
	})
	return got, handler(c)
}

func TestAuthResolvesUserID(t *testing.T) {
	token := signToken(t, "test-secret", 42)
	got, err := runAuth(t, "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), got)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", 42)
	_, err := runAuth(t, "Bearer "+token)
	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	_, err := runAuth(t, "Token abc")
	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	}
}

func TestCurrentUserIDWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, uint(0), CurrentUserID(c))
}
