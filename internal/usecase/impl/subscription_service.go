package impl

import (
	"context"
	"log/slog"
	"sync"

	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/domain/repository"
	"nearshop/internal/errors"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

type subscriptionService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[int64]struct{}
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Logger   *slog.Logger
}

// NewSubscriptionService creates a new subscription coordinator instance.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		shopRepo: params.ShopRepo,
		logger:   params.Logger,
		pending:  make(map[int64]struct{}),
	}
}

// Toggle flips the viewer's subscription on shop. The per-id pending guard
// ensures at most one mutation is in flight per shop; the optimistic flip is
// applied before the network call and reverted exactly on failure.
func (s *subscriptionService) Toggle(ctx context.Context, session *entity.Session, shop *entity.EnrichedShop) error {
	if session == nil {
		return domainerrors.ErrAuthenticationRequired
	}
	if shop == nil {
		return domainerrors.ErrShopNotFound
	}
	if shop.Detail == nil {
		// No detail means the subscription state is unknown; there is
		// nothing to flip.
		return domainerrors.ErrShopDetailUnknown
	}

	s.mu.Lock()
	if _, inFlight := s.pending[shop.ID]; inFlight {
		s.mu.Unlock()

		return nil
	}
	s.pending[shop.ID] = struct{}{}

	wasSubscribed := shop.Detail.IsSubscribed
	prevCount := shop.Detail.SubscriberCount

	// Optimistic flip, visible to the view before the network call resolves.
	if wasSubscribed {
		shop.Detail.IsSubscribed = false
		if prevCount > 0 {
			shop.Detail.SubscriberCount = prevCount - 1
		}
	} else {
		shop.Detail.IsSubscribed = true
		shop.Detail.SubscriberCount = prevCount + 1
	}
	s.mu.Unlock()

	var err error
	if wasSubscribed {
		err = s.shopRepo.Unsubscribe(ctx, session.Token, shop.ID)
	} else {
		err = s.shopRepo.Subscribe(ctx, session.Token, shop.ID)
	}

	s.mu.Lock()
	delete(s.pending, shop.ID)
	if err != nil {
		// Revert to the exact pre-toggle state.
		shop.Detail.IsSubscribed = wasSubscribed
		shop.Detail.SubscriberCount = prevCount
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("subscription toggle failed",
			slog.Int64("shop_id", shop.ID),
			slog.Bool("was_subscribed", wasSubscribed),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to update subscription")
	}

	return nil
}

// Pending reports whether a mutation for the shop id is in flight.
func (s *subscriptionService) Pending(shopID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, inFlight := s.pending[shopID]

	return inFlight
}

// PendingIDs returns a detached copy of the in-flight shop id set.
func (s *subscriptionService) PendingIDs() map[int64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(map[int64]struct{}, len(s.pending))
	for id := range s.pending {
		ids[id] = struct{}{}
	}

	return ids
}
