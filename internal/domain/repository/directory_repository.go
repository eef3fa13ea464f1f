package repository

import (
	"context"

	"nearshop/internal/domain/entity"
)

// DirectoryRepository is the server-side store of shops and subscriptions
// behind the stub API. Distances in results are measured from the query
// position in meters.
type DirectoryRepository interface {
	// ListNearby returns up to limit shops within radiusMeters of the
	// position, ordered nearest first.
	ListNearby(ctx context.Context, position entity.Position, radiusMeters int, limit int) ([]entity.ShopSummary, error)

	// GetDetail returns the subscription view of one shop for the given user.
	GetDetail(ctx context.Context, userID int64, shopID int64) (*entity.ShopDetail, error)

	// Subscribe records a subscription of the user to the shop.
	Subscribe(ctx context.Context, userID int64, shopID int64) error

	// Unsubscribe removes the subscription of the user to the shop.
	Unsubscribe(ctx context.Context, userID int64, shopID int64) error
}

// AccountRepository looks up registered accounts for login.
type AccountRepository interface {
	// FindByEmail returns the account registered under the email, or
	// ErrInvalidCredentials when no such account exists.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
