// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"nearshop/config"
	"nearshop/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Stub == nil || cfg.Stub.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.Stub.SecretKey,
		ttl:    time.Hour * 24,
	}, nil
}

// GenerateToken creates a signed access token for a given account.
func (s *jwtService) GenerateToken(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"email": email,
		"iat":   time.Now().Unix(),            // Issued At
		"exp":   time.Now().Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))

	return signed, errors.WithStack(err)
}

// ValidateToken checks the validity of a token string against the secret.
func (s *jwtService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
}
