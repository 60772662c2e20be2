package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the resolved caller identity lives under
const userIDKey = "user_id"

// Claims are the token claims the external identity provider signs
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Authenticator resolves a request to a stable user identifier. Token
// issuance and verification policy belong to the identity service; this
// subsystem only consumes the result.
type Authenticator interface {
	Authenticate(c echo.Context) (uint, error)
}

// JWTAuthenticator verifies HMAC-signed bearer tokens
type JWTAuthenticator struct {
	secret []byte
}

// NewJWTAuthenticator creates a JWTAuthenticator; the secret falls back to
// the JWT_SECRET environment variable
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return &JWTAuthenticator{secret: []byte(secret)}
}

// Authenticate extracts and verifies the bearer token, returning the user ID
func (a *JWTAuthenticator) Authenticate(c echo.Context) (uint, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if claims.UserID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Token carries no user identity")
	}
	return claims.UserID, nil
}

// Auth returns the echo middleware that resolves the caller identity and
// stores it in the request context
func Auth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := authenticator.Authenticate(c)
			if err != nil {
				return err
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// CurrentUserID returns the caller identity resolved by Auth; zero means
// the middleware did not run
func CurrentUserID(c echo.Context) uint {
	if id, ok := c.Get(userIDKey).(uint); ok {
		return id
	}
	return 0
}
