package impl

import (
	"context"
	"log/slog"
	"sync"

	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/repository"
	"nearshop/internal/errors"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

type enrichmentService struct {
	shopRepo repository.ShopRepository
	logger   *slog.Logger
}

// EnrichmentServiceParams holds dependencies for EnrichmentService, injected by Fx.
type EnrichmentServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Logger   *slog.Logger
}

// NewEnrichmentService creates a new enrichment service instance.
func NewEnrichmentService(params EnrichmentServiceParams) usecase.EnrichmentUsecase {
	return &enrichmentService{
		shopRepo: params.ShopRepo,
		logger:   params.Logger,
	}
}

// Enrich fans out one detail fetch per summary and joins the batch once every
// fetch has settled. Per-shop failures are swallowed: an expired session (401)
// simply omits that shop, and any other failure is logged at warn and omitted
// as well, so one shop's metadata being unavailable never blocks the rest.
func (s *enrichmentService) Enrich(ctx context.Context, summaries []entity.ShopSummary, session *entity.Session) map[int64]entity.ShopDetail {
	details := make(map[int64]entity.ShopDetail, len(summaries))
	if session == nil {
		return details
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, summary := range summaries {
		wg.Add(1)
		go func() {
			defer wg.Done()

			detail, err := s.shopRepo.GetShopDetail(ctx, session.Token, summary.ID)
			if err != nil {
				if !errors.Is(err, repository.ErrUnauthorized) {
					s.logger.Warn("shop detail fetch failed",
						slog.Int64("shop_id", summary.ID),
						slog.Any("error", err),
					)
				}

				return
			}
			if detail == nil {
				return
			}

			// Keyed by the summary's id, keeping the result a strict subset
			// of the input batch.
			mu.Lock()
			details[summary.ID] = *detail
			mu.Unlock()
		}()
	}
	wg.Wait()

	return details
}
