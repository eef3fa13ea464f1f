package usecase

import (
	"context"

	"nearshop/internal/domain/entity"
)

// SubscriptionUsecase performs optimistic subscribe/unsubscribe toggles on an
// enriched shop, guarded per shop id so no two mutations for the same shop
// are ever in flight at once.
type SubscriptionUsecase interface {
	// Toggle flips the viewer's subscription on the given shop. The local
	// detail is updated optimistically before the network call resolves and
	// rolled back exactly on failure. A nil session is rejected with
	// ErrAuthenticationRequired before any state change; a toggle already in
	// flight for the same shop makes the call a no-op.
	Toggle(ctx context.Context, session *entity.Session, shop *entity.EnrichedShop) error

	// Pending reports whether a mutation for the shop id is in flight.
	Pending(shopID int64) bool

	// PendingIDs returns a detached copy of the in-flight shop id set.
	PendingIDs() map[int64]struct{}
}
