package auth

import (
	"testing"

	"nearshop/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stub = &config.StubConfig{
		SecretKey:  "test_secret_key_very_long_for_testing",
		BcryptCost: 4,
	}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.GenerateToken(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	parsed, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.Stub.SecretKey = "another_secret_key_very_long_for_testing"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(1, "a@example.com")
	assert.NoError(t, err)

	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
