package geo

import (
	"context"
	"io"
	"net/http"

	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const defaultIPEndpoint = "http://ip-api.com/json"

// ipResponse is the subset of the ip-api.com payload the provider reads.
type ipResponse struct {
	Status  string  `json:"status"` // "success" or "fail"
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ipProvider approximates the host position from its public IP address.
// Accuracy is city-level, which satisfies the reduced accuracy preference of
// the position acquisition contract.
type ipProvider struct {
	endpoint string
	httpc    *http.Client
}

// NewIPProvider returns a provider backed by an ip-api.com compatible
// endpoint. An empty endpoint selects the public service.
func NewIPProvider(endpoint string) service.LocationProvider {
	if endpoint == "" {
		endpoint = defaultIPEndpoint
	}

	return &ipProvider{
		endpoint: endpoint,
		httpc:    &http.Client{},
	}
}

func (p *ipProvider) Supported() bool {
	return true
}

// CurrentPosition queries the IP geolocation endpoint. The caller bounds the
// call with a context deadline.
func (p *ipProvider) CurrentPosition(ctx context.Context) (entity.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return entity.Position{}, errors.Wrap(err, "build ip geolocation request")
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		return entity.Position{}, errors.Wrap(err, "ip geolocation request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Position{}, errors.Wrap(err, "read ip geolocation response")
	}

	var decoded ipResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return entity.Position{}, errors.Wrap(err, "decode ip geolocation response")
	}

	if decoded.Status != "success" {
		return entity.Position{}, errors.Errorf("ip geolocation failed: %s", decoded.Message)
	}

	return entity.Position{Latitude: decoded.Lat, Longitude: decoded.Lon}, nil
}
