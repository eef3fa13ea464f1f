package usecase

import (
	"context"

	"nearshop/internal/domain/entity"
)

// EnrichmentUsecase fetches auth-scoped per-shop detail for a batch of
// summaries. Enrichment is best-effort: it never fails the batch and never
// surfaces an error to the caller.
type EnrichmentUsecase interface {
	// Enrich issues one detail fetch per summary concurrently and collects
	// the successes. The returned map's key set is always a subset of the
	// summaries' ids. A nil session short-circuits to an empty map with no
	// requests issued.
	Enrich(ctx context.Context, summaries []entity.ShopSummary, session *entity.Session) map[int64]entity.ShopDetail
}
