package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/repository"

	"go.uber.org/fx"
)

// shopClient implements repository.ShopRepository against the HTTP backend.
type shopClient struct {
	client *Client
}

// ShopRepositoryParams holds dependencies for the shop repository, injected by Fx.
type ShopRepositoryParams struct {
	fx.In

	Client *Client
}

// NewShopRepository is the constructor for the HTTP-backed shop repository.
func NewShopRepository(params ShopRepositoryParams) repository.ShopRepository {
	return &shopClient{client: params.Client}
}

// QueryNearby returns shops within radiusMeters of pos. The server-defined
// order is preserved as received.
func (s *shopClient) QueryNearby(ctx context.Context, pos entity.Position, radiusMeters, limit int) ([]entity.ShopSummary, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(pos.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(pos.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.Itoa(radiusMeters))
	query.Set("limit", strconv.Itoa(limit))

	req, err := s.client.newRequest(ctx, http.MethodGet, "shops", "", query, nil)
	if err != nil {
		return nil, err
	}

	var summaries []entity.ShopSummary
	if err := s.client.request(req, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetShopDetail fetches the auth-scoped detail for one shop.
func (s *shopClient) GetShopDetail(ctx context.Context, token string, shopID int64) (*entity.ShopDetail, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "shops/"+strconv.FormatInt(shopID, 10), token, nil, nil)
	if err != nil {
		return nil, err
	}

	var detail entity.ShopDetail
	if err := s.client.request(req, &detail); err != nil {
		return nil, err
	}
	detail.ShopID = shopID

	return &detail, nil
}

// Subscribe creates the subscription edge for the authenticated user.
func (s *shopClient) Subscribe(ctx context.Context, token string, shopID int64) error {
	return s.mutate(ctx, token, shopID, "subscribe")
}

// Unsubscribe removes the subscription edge for the authenticated user.
func (s *shopClient) Unsubscribe(ctx context.Context, token string, shopID int64) error {
	return s.mutate(ctx, token, shopID, "unsubscribe")
}

func (s *shopClient) mutate(ctx context.Context, token string, shopID int64, action string) error {
	path := "shops/" + strconv.FormatInt(shopID, 10) + "/" + action

	req, err := s.client.newRequest(ctx, http.MethodPost, path, token, nil, nil)
	if err != nil {
		return err
	}

	return s.client.request(req, nil)
}
