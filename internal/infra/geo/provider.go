// Package geo provides concrete LocationProvider implementations for
// headless hosts.
package geo

import (
	"context"

	"nearshop/config"
	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the location provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config *config.Config
}

// NewLocationProvider selects the host location capability from config.
func NewLocationProvider(params ProviderParams) (service.LocationProvider, error) {
	switch params.Config.Geo.Provider {
	case "none":
		return Unsupported(), nil
	case "static":
		return NewStaticProvider(entity.Position{
			Latitude:  params.Config.Geo.StaticLatitude,
			Longitude: params.Config.Geo.StaticLongitude,
		}), nil
	case "ip":
		return NewIPProvider(params.Config.Geo.IPEndpoint), nil
	default:
		return nil, errors.Errorf("unknown geo provider: %s", params.Config.Geo.Provider)
	}
}

// unsupportedProvider represents a host without location capability.
type unsupportedProvider struct{}

// Unsupported returns a provider whose Supported always reports false.
func Unsupported() service.LocationProvider {
	return unsupportedProvider{}
}

func (unsupportedProvider) Supported() bool {
	return false
}

func (unsupportedProvider) CurrentPosition(context.Context) (entity.Position, error) {
	return entity.Position{}, errors.New("location capability not available")
}

// staticProvider reports a fixed position, useful for development.
type staticProvider struct {
	pos entity.Position
}

// NewStaticProvider returns a provider pinned to pos.
func NewStaticProvider(pos entity.Position) service.LocationProvider {
	return staticProvider{pos: pos}
}

func (s staticProvider) Supported() bool {
	return true
}

func (s staticProvider) CurrentPosition(context.Context) (entity.Position, error) {
	return s.pos, nil
}
