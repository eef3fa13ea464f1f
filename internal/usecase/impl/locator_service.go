// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"nearshop/config"
	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/service"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

type locatorService struct {
	provider   service.LocationProvider
	defaultPos entity.Position
	timeout    time.Duration
	logger     *slog.Logger
}

// LocatorServiceParams holds dependencies for LocatorService, injected by Fx.
type LocatorServiceParams struct {
	fx.In

	Provider service.LocationProvider `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewLocatorService creates a new locator service instance.
func NewLocatorService(params LocatorServiceParams) usecase.LocatorUsecase {
	return &locatorService{
		provider: params.Provider,
		defaultPos: entity.Position{
			Latitude:  params.Config.Discovery.DefaultLatitude,
			Longitude: params.Config.Discovery.DefaultLongitude,
		},
		timeout: params.Config.Geo.AcquireTimeout,
		logger:  params.Logger,
	}
}

// Acquire resolves a position for the initial load. Failure is absorbed into
// the fallback path: the caller always receives a usable position.
func (s *locatorService) Acquire(ctx context.Context) entity.PositionFix {
	if !s.supported() {
		return entity.PositionFix{Position: s.defaultPos, Provenance: entity.ProvenanceFallbackUnsupported}
	}

	pos, err := s.currentPosition(ctx)
	if err != nil {
		s.logger.Debug("position acquisition failed, using fallback", slog.Any("error", err))

		return entity.PositionFix{Position: s.defaultPos, Provenance: entity.ProvenanceFallbackDenied}
	}

	return entity.PositionFix{Position: pos, Provenance: entity.ProvenancePrecise}
}

// AcquireOnDemand resolves a position for an explicit user request. A missing
// capability is reported distinctly rather than silently falling back.
func (s *locatorService) AcquireOnDemand(ctx context.Context) entity.PositionFix {
	if !s.supported() {
		return entity.PositionFix{Position: s.defaultPos, Provenance: entity.ProvenanceNotSupported}
	}

	pos, err := s.currentPosition(ctx)
	if err != nil {
		s.logger.Debug("on-demand position acquisition failed", slog.Any("error", err))

		return entity.PositionFix{Position: s.defaultPos, Provenance: entity.ProvenanceRetryFailed}
	}

	return entity.PositionFix{Position: pos, Provenance: entity.ProvenancePrecise}
}

func (s *locatorService) supported() bool {
	return s.provider != nil && s.provider.Supported()
}

// currentPosition bounds the provider call with the configured timeout so a
// hung host capability degrades to the fallback instead of stalling the load.
func (s *locatorService) currentPosition(ctx context.Context) (entity.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.provider.CurrentPosition(ctx)
}
