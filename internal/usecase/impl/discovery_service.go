package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"nearshop/config"
	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/domain/repository"
	"nearshop/internal/errors"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

// discoveryService owns the DiscoveryState and is the only component that
// mutates it. Every async apply-site re-checks the load generation under the
// lock before touching shared state, so results of superseded loads are
// discarded, never applied.
type discoveryService struct {
	locator       usecase.LocatorUsecase
	enricher      usecase.EnrichmentUsecase
	subscriptions usecase.SubscriptionUsecase
	shopRepo      repository.ShopRepository
	logger        *slog.Logger
	limit         int

	mu         sync.Mutex
	generation uint64
	position   *entity.Position
	notice     string
	radius     int
	searchText string
	viewMode   entity.ViewMode
	shops      []*entity.EnrichedShop
	byID       map[int64]*entity.EnrichedShop
	loading    bool
	loadErr    string
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Locator       usecase.LocatorUsecase
	Enricher      usecase.EnrichmentUsecase
	Subscriptions usecase.SubscriptionUsecase
	ShopRepo      repository.ShopRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDiscoveryService creates a new discovery view model instance. State is
// fresh per instance; create one per page visit.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		locator:       params.Locator,
		enricher:      params.Enricher,
		subscriptions: params.Subscriptions,
		shopRepo:      params.ShopRepo,
		logger:        params.Logger,
		limit:         params.Config.Discovery.Limit,
		radius:        params.Config.Discovery.DefaultRadius,
		viewMode:      entity.ViewModeList,
		byID:          make(map[int64]*entity.EnrichedShop),
	}
}

// Load runs the full load sequence from position acquisition onward.
func (s *discoveryService) Load(ctx context.Context, session *entity.Session) error {
	fix := s.locator.Acquire(ctx)

	s.mu.Lock()
	gen := s.beginLoadLocked(fix.Position, fix.Provenance.Notice())
	radius := s.radius
	pos := fix.Position
	s.mu.Unlock()

	return s.runQuery(ctx, session, gen, pos, radius)
}

// SetRadius triggers a full re-query with the new radius, re-acquiring the
// position when none is cached yet.
func (s *discoveryService) SetRadius(ctx context.Context, session *entity.Session, radiusMeters int) error {
	if !entity.ValidRadius(radiusMeters) {
		return domainerrors.ErrInvalidRadius
	}

	s.mu.Lock()
	s.radius = radiusMeters
	if s.position == nil {
		s.mu.Unlock()

		return s.Load(ctx, session)
	}
	pos := *s.position
	gen := s.beginLoadLocked(pos, s.notice)
	s.mu.Unlock()

	return s.runQuery(ctx, session, gen, pos, radiusMeters)
}

// UseMyLocation re-acquires on explicit user request. Only a precise fix
// re-runs the load; any fallback outcome just updates the notice.
func (s *discoveryService) UseMyLocation(ctx context.Context, session *entity.Session) error {
	fix := s.locator.AcquireOnDemand(ctx)

	s.mu.Lock()
	s.notice = fix.Provenance.Notice()
	if !fix.Provenance.Precise() {
		s.mu.Unlock()

		return nil
	}
	gen := s.beginLoadLocked(fix.Position, fix.Provenance.Notice())
	radius := s.radius
	pos := fix.Position
	s.mu.Unlock()

	return s.runQuery(ctx, session, gen, pos, radius)
}

// SetSearchText updates the client-side filter. No server traffic.
func (s *discoveryService) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchText = text
}

// SetViewMode switches between list and map presentation.
func (s *discoveryService) SetViewMode(mode entity.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewMode = mode
}

// ToggleSubscription delegates to the subscription coordinator for the shop
// currently held in state.
func (s *discoveryService) ToggleSubscription(ctx context.Context, session *entity.Session, shopID int64) error {
	s.mu.Lock()
	shop, ok := s.byID[shopID]
	s.mu.Unlock()

	if !ok {
		return domainerrors.ErrShopNotFound
	}

	return s.subscriptions.Toggle(ctx, session, shop)
}

// Snapshot returns a point-in-time copy of the state for rendering.
func (s *discoveryService) Snapshot() entity.DiscoveryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := entity.DiscoveryState{
		Notice:       s.notice,
		RadiusMeters: s.radius,
		SearchText:   s.searchText,
		ViewMode:     s.viewMode,
		Pending:      s.subscriptions.PendingIDs(),
		Loading:      s.loading,
		LoadError:    s.loadErr,
	}
	if s.position != nil {
		pos := *s.position
		state.Position = &pos
	}
	state.Shops = make([]entity.EnrichedShop, 0, len(s.shops))
	for _, shop := range s.shops {
		state.Shops = append(state.Shops, shop.Clone())
	}

	return state
}

// VisibleShops returns the shops passing the case-insensitive substring
// filter on name or address, preserving server order.
func (s *discoveryService) VisibleShops() []entity.EnrichedShop {
	s.mu.Lock()
	defer s.mu.Unlock()

	keyword := strings.ToLower(strings.TrimSpace(s.searchText))
	visible := make([]entity.EnrichedShop, 0, len(s.shops))
	for _, shop := range s.shops {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(shop.Name), keyword) &&
			!strings.Contains(strings.ToLower(shop.Address), keyword) {
			continue
		}
		visible = append(visible, shop.Clone())
	}

	return visible
}

// beginLoadLocked bumps the generation and records the new position, marking
// the state as loading. Callers must hold s.mu.
func (s *discoveryService) beginLoadLocked(pos entity.Position, notice string) uint64 {
	s.generation++
	s.position = &pos
	s.notice = notice
	s.loading = true
	s.loadErr = ""

	return s.generation
}

// runQuery performs the nearby query and enrichment for one load generation.
// Results are applied only while gen is still the current generation.
func (s *discoveryService) runQuery(ctx context.Context, session *entity.Session, gen uint64, pos entity.Position, radius int) error {
	summaries, err := s.shopRepo.QueryNearby(ctx, pos, radius, s.limit)
	if err != nil {
		s.mu.Lock()
		if gen == s.generation {
			s.loading = false
			s.loadErr = domainerrors.ErrShopQueryFailed.Message()
			s.shops = nil
			s.byID = make(map[int64]*entity.EnrichedShop)
		}
		s.mu.Unlock()

		return errors.Wrap(err, "nearby shop query failed")
	}

	// Replace shops wholesale, dropping duplicate ids (first occurrence wins).
	shops := make([]*entity.EnrichedShop, 0, len(summaries))
	byID := make(map[int64]*entity.EnrichedShop, len(summaries))
	for _, summary := range summaries {
		if _, seen := byID[summary.ID]; seen {
			continue
		}
		shop := &entity.EnrichedShop{ShopSummary: summary}
		shops = append(shops, shop)
		byID[summary.ID] = shop
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()

		return nil
	}
	s.shops = shops
	s.byID = byID
	s.mu.Unlock()

	details := s.enricher.Enrich(ctx, summaries, session)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil
	}
	for id, detail := range details {
		if shop, ok := s.byID[id]; ok {
			d := detail
			shop.Detail = &d
		}
	}
	s.loading = false

	return nil
}
