// Package usecase defines the interfaces of the discovery engine's use cases.
package usecase

import (
	"context"

	"nearshop/internal/domain/entity"
)

// LocatorUsecase acquires a usable position from the host with a fallback to
// the configured default. Neither method can fail: every outcome resolves to
// a PositionFix whose provenance explains how the position was obtained.
type LocatorUsecase interface {
	// Acquire resolves a position for the initial load. Hosts without
	// location capability silently fall back to the default position.
	Acquire(ctx context.Context) entity.PositionFix

	// AcquireOnDemand resolves a position for an explicit user request. It
	// follows the same fallback policy but reports a missing capability
	// distinctly instead of silently falling back.
	AcquireOnDemand(ctx context.Context) entity.PositionFix
}
