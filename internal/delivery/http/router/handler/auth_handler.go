package handler

import (
	"log/slog"
	"net/http"

	"nearshop/internal/delivery/http/response"
	"nearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
