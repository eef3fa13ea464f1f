package usecase

import (
	"context"

	"nearshop/internal/domain/entity"
)

// DiscoveryUsecase composes position acquisition, the nearby query,
// enrichment and subscription toggling into one coherent state machine
// driving both the list and map presentations.
type DiscoveryUsecase interface {
	// Load runs the full load sequence: acquire a position, query nearby
	// shops, then enrich them when a session exists. A query failure is
	// returned and recorded as the blocking error state.
	Load(ctx context.Context, session *entity.Session) error

	// SetRadius switches the query radius and triggers a full re-query with
	// the current position (re-acquiring if none is cached). Shops are
	// replaced wholesale; results of superseded loads are discarded.
	SetRadius(ctx context.Context, session *entity.Session, radiusMeters int) error

	// UseMyLocation re-acquires the position on explicit user request. Only a
	// precise fix re-runs the load sequence; on any fallback outcome the
	// current shops and position stay untouched and only the notice changes.
	UseMyLocation(ctx context.Context, session *entity.Session) error

	// SetSearchText updates the client-side filter. No server traffic.
	SetSearchText(text string)

	// SetViewMode switches between list and map. Pure presentation toggle.
	SetViewMode(mode entity.ViewMode)

	// ToggleSubscription delegates to the subscription coordinator for the
	// shop with the given id.
	ToggleSubscription(ctx context.Context, session *entity.Session, shopID int64) error

	// Snapshot returns a point-in-time copy of the state for rendering.
	Snapshot() entity.DiscoveryState

	// VisibleShops returns the shops passing the search filter, preserving
	// server order. Both view modes read this sequence.
	VisibleShops() []entity.EnrichedShop
}
