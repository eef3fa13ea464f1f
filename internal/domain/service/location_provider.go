// Package service defines contracts for host capabilities consumed by the
// use case layer.
package service

import (
	"context"

	"nearshop/internal/domain/entity"
)

// LocationProvider is the optional host geolocation capability. Hosts without
// one are represented by a provider whose Supported returns false (or by a nil
// provider); the locator then falls back to the configured default position.
type LocationProvider interface {
	// Supported reports whether the host can produce a position at all.
	Supported() bool

	// CurrentPosition returns the host's position. The caller bounds the call
	// with a context deadline; errors and timeouts are absorbed into the
	// locator's fallback path.
	CurrentPosition(ctx context.Context) (entity.Position, error)
}
