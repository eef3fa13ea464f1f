package impl

import (
	"context"
	"log/slog"

	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/domain/repository"
	"nearshop/internal/errors"
	"nearshop/internal/usecase"

	"go.uber.org/fx"
)

type directoryService struct {
	directory repository.DirectoryRepository
	logger    *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	Directory repository.DirectoryRepository
	Logger    *slog.Logger
}

// NewDirectoryService creates a new directory service instance.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		directory: params.Directory,
		logger:    params.Logger,
	}
}

// NearbyShops validates the radius and queries the directory.
func (s *directoryService) NearbyShops(ctx context.Context, position entity.Position, radiusMeters int, limit int) ([]entity.ShopSummary, error) {
	if !entity.ValidRadius(radiusMeters) {
		return nil, errors.WithStack(domainerrors.ErrInvalidRadius)
	}

	summaries, err := s.directory.ListNearby(ctx, position, radiusMeters, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nearby shops")
	}

	return summaries, nil
}

// ShopDetail returns the subscription view of one shop for the user.
func (s *directoryService) ShopDetail(ctx context.Context, userID int64, shopID int64) (*entity.ShopDetail, error) {
	detail, err := s.directory.GetDetail(ctx, userID, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get shop detail")
	}

	return detail, nil
}

// Subscribe adds the user to the shop's subscribers.
func (s *directoryService) Subscribe(ctx context.Context, userID int64, shopID int64) error {
	if err := s.directory.Subscribe(ctx, userID, shopID); err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}

	s.logger.Info("subscribed",
		slog.Int64("user_id", userID),
		slog.Int64("shop_id", shopID),
	)

	return nil
}

// Unsubscribe removes the user from the shop's subscribers.
func (s *directoryService) Unsubscribe(ctx context.Context, userID int64, shopID int64) error {
	if err := s.directory.Unsubscribe(ctx, userID, shopID); err != nil {
		return errors.Wrap(err, "failed to unsubscribe")
	}

	s.logger.Info("unsubscribed",
		slog.Int64("user_id", userID),
		slog.Int64("shop_id", shopID),
	)

	return nil
}
