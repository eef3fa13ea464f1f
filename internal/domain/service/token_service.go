package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given account.
	GenerateToken(userID int64, email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
