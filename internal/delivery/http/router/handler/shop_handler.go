// Package handler contains the HTTP handlers for the stub API server.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nearshop/config"
	"nearshop/internal/delivery/http/middleware"
	"nearshop/internal/delivery/http/response"
	"nearshop/internal/domain/entity"
	"nearshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NearbyShopsQuery is the query payload for the nearby-shops listing.
type NearbyShopsQuery struct {
	Latitude     float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude    float64 `query:"lon" validate:"min=-180,max=180"`
	RadiusMeters int     `query:"radius"`
	Limit        int     `query:"limit" validate:"min=0,max=100"`
}

// ShopHandler holds dependencies for shop directory handlers.
type ShopHandler struct {
	uc     usecase.DirectoryUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.DirectoryUsecase, cfg *config.Config, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// ListNearby handles the public nearby-shops query.
func (h *ShopHandler) ListNearby(c echo.Context) error {
	var query NearbyShopsQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop query")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	// Missing coordinates fall back to the configured defaults, matching the
	// engine's own fallback position.
	if query.Latitude == 0 && query.Longitude == 0 {
		query.Latitude = h.cfg.Discovery.DefaultLatitude
		query.Longitude = h.cfg.Discovery.DefaultLongitude
	}
	if query.RadiusMeters == 0 {
		query.RadiusMeters = h.cfg.Discovery.DefaultRadius
	}
	if query.Limit == 0 {
		query.Limit = h.cfg.Discovery.Limit
	}

	position := entity.Position{Latitude: query.Latitude, Longitude: query.Longitude}
	summaries, err := h.uc.NearbyShops(c.Request().Context(), position, query.RadiusMeters, query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "Shops retrieved successfully")
}

// GetDetail handles the authenticated shop detail request.
func (h *ShopHandler) GetDetail(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authentication required")
	}
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop id")
	}

	detail, err := h.uc.ShopDetail(c.Request().Context(), userID, shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Shop detail retrieved successfully")
}

// Subscribe handles the subscribe mutation.
func (h *ShopHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authentication required")
	}
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop id")
	}

	if err := h.uc.Subscribe(c.Request().Context(), userID, shopID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"shop_id": shopID}, "Subscribed successfully")
}

// Unsubscribe handles the unsubscribe mutation.
func (h *ShopHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTHENTICATION_REQUIRED", "Authentication required")
	}
	shopID, err := shopIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shop id")
	}

	if err := h.uc.Unsubscribe(c.Request().Context(), userID, shopID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"shop_id": shopID}, "Unsubscribed successfully")
}

func shopIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
