// Package api implements the shop backend contract over HTTP.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"nearshop/config"
	"nearshop/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// APIError is a typed failure carrying the HTTP status of a non-success
// response. Status 401 unwraps to repository.ErrUnauthorized so callers can
// apply the enrichment-swallow policy with errors.Is.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%d %s)", e.Message, e.Status, e.Code)
	}

	return fmt.Sprintf("api: %s (%d)", e.Message, e.Status)
}

// Unwrap maps 401 responses onto the repository sentinel.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return repository.ErrUnauthorized
	}

	return nil
}

// envelope mirrors the backend's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Client is a thin JSON client for the shop backend. It keeps no state
// between calls other than the underlying connection pool.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// ClientParams holds dependencies for the Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpc:   &http.Client{Timeout: params.Config.API.Timeout},
		logger:  params.Logger,
	}
}

// request performs one round trip and decodes the envelope's data field into
// out when non-nil. A non-2xx response yields an *APIError.
func (c *Client) request(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	var env envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil && resp.StatusCode < http.StatusMultipleChoices {
			return errors.Wrap(err, "decode response envelope")
		}
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: env.Message,
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.logger.Debug("api request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode response data")
		}
	}

	return nil
}

// newRequest builds a request against the configured base URL.
func (c *Client) newRequest(ctx context.Context, method, path, token string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s request", method, path)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}
