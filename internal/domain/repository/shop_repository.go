// Package repository defines the data-access contracts consumed by the
// discovery engine. The concrete implementation lives in internal/infra/api.
package repository

import (
	"context"
	"errors"

	"nearshop/internal/domain/entity"
)

// ErrUnauthorized is returned when an authenticated endpoint answers 401.
// The enricher relies on it being distinguishable from other failures.
var ErrUnauthorized = errors.New("unauthorized")

// ShopRepository is the remote shop API at the transport boundary. Every call
// is a single request/response with no state kept between calls.
type ShopRepository interface {
	// QueryNearby returns shops within radiusMeters of pos, at most limit.
	// The server-defined order is preserved; transport failures propagate.
	QueryNearby(ctx context.Context, pos entity.Position, radiusMeters, limit int) ([]entity.ShopSummary, error)

	// GetShopDetail fetches the auth-scoped detail for one shop. Returns
	// ErrUnauthorized (possibly wrapped) when the session is absent or expired.
	GetShopDetail(ctx context.Context, token string, shopID int64) (*entity.ShopDetail, error)

	// Subscribe creates the (user, shop) subscription edge.
	Subscribe(ctx context.Context, token string, shopID int64) error

	// Unsubscribe removes the (user, shop) subscription edge.
	Unsubscribe(ctx context.Context, token string, shopID int64) error
}
