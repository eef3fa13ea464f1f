// Package middleware contains HTTP middleware for the stub API server.
package middleware

import (
	"strconv"
	"strings"

	"nearshop/internal/delivery/http/response"
	"nearshop/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the authenticated account id is stored under.
const userIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Failed to parse token claims")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "User ID missing from token")
		}
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Invalid user ID format in token")
		}

		// Set user info on the context for handlers to use
		c.Set(userIDKey, userID)

		return next(c)
	}
}

// UserID extracts the authenticated account id placed on the context by
// Authenticate. The boolean reports whether the request was authenticated.
func UserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(userIDKey).(int64)

	return userID, ok
}
