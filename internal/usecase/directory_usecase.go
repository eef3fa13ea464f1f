package usecase

import (
	"context"

	"nearshop/internal/domain/entity"
)

// DirectoryUsecase serves the shop directory behind the stub API.
type DirectoryUsecase interface {
	// NearbyShops returns shops within the radius of the position, nearest
	// first. The radius must be one of the supported choices.
	NearbyShops(ctx context.Context, position entity.Position, radiusMeters int, limit int) ([]entity.ShopSummary, error)

	// ShopDetail returns the subscription view of one shop for the user.
	ShopDetail(ctx context.Context, userID int64, shopID int64) (*entity.ShopDetail, error)

	// Subscribe adds the user to the shop's subscribers.
	Subscribe(ctx context.Context, userID int64, shopID int64) error

	// Unsubscribe removes the user from the shop's subscribers.
	Unsubscribe(ctx context.Context, userID int64, shopID int64) error
}
