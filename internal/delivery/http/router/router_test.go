package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearshop/config"
	deliverymiddleware "nearshop/internal/delivery/http/middleware"
	"nearshop/internal/delivery/http/response"
	"nearshop/internal/delivery/http/router/handler"
	"nearshop/internal/delivery/http/validator"
	"nearshop/internal/domain/entity"
	"nearshop/internal/infra/auth"
	"nearshop/internal/infra/shopstore"
	"nearshop/internal/usecase"
	"nearshop/internal/usecase/impl"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Discovery = config.DiscoveryConfig{
		DefaultLatitude:  13.0827,
		DefaultLongitude: 80.2707,
		DefaultRadius:    5000,
		Limit:            20,
	}
	cfg.Stub = &config.StubConfig{
		Port:       8080,
		SecretKey:  "test_secret_key_very_long_for_testing",
		BcryptCost: 4,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store, err := shopstore.NewStore(shopstore.StoreParams{
		Config: cfg,
		Logger: logger,
		Hasher: hasher,
	})
	require.NoError(t, err)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		Accounts: shopstore.NewAccountRepository(store),
		Hasher:   hasher,
		Tokens:   tokens,
		Logger:   logger,
	})
	directoryUsecase := impl.NewDirectoryService(impl.DirectoryServiceParams{
		Directory: shopstore.NewDirectoryRepository(store),
		Logger:    logger,
	})

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ShopHandler:    handler.NewShopHandler(directoryUsecase, cfg, logger),
		AuthHandler:    handler.NewAuthHandler(authUsecase, logger),
		AuthMiddleware: deliverymiddleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(echoServer)

	return echoServer
}

func doRequest(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	var envelope struct {
		Success bool                `json:"success"`
		Code    int                 `json:"code"`
		Message string              `json:"message"`
		Data    json.RawMessage     `json:"data"`
		Error   *response.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if data != nil && envelope.Data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return response.Response{
		Success: envelope.Success,
		Code:    envelope.Code,
		Message: envelope.Message,
		Error:   envelope.Error,
	}
}

func login(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doRequest(e, http.MethodPost, "/auth/login", "", `{"email":"demo@example.com","password":"DemoPass123!"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var output usecase.LoginOutput
	decodeEnvelope(t, rec, &output)
	require.NotEmpty(t, output.Token)

	return output.Token
}

func TestRouter_Health(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec, nil)
	assert.True(t, envelope.Success)
}

func TestRouter_Login(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e)
	assert.NotEmpty(t, token)

	rec := doRequest(e, http.MethodPost, "/auth/login", "", `{"email":"demo@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec, nil)
	assert.False(t, envelope.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)

	// Unknown email is indistinguishable from a wrong password.
	rec = doRequest(e, http.MethodPost, "/auth/login", "", `{"email":"nobody@example.com","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/auth/login", "", `{"email":"not-an-email","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ListNearbyIsPublic(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/shops?lat=13.0827&lon=80.2707&radius=5000&limit=20", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var summaries []entity.ShopSummary
	envelope := decodeEnvelope(t, rec, &summaries)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, summaries)
	for i := 1; i < len(summaries); i++ {
		assert.GreaterOrEqual(t, summaries[i].DistanceMeters, summaries[i-1].DistanceMeters)
	}
}

func TestRouter_ListNearbyInvalidRadius(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/shops?lat=13.0827&lon=80.2707&radius=1234&limit=20", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "INVALID_RADIUS", envelope.Error.Code)
}

func TestRouter_ShopDetailRequiresAuth(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/shops/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodGet, "/shops/1", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SubscriptionLifecycle(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e)

	var detail entity.ShopDetail
	rec := doRequest(e, http.MethodGet, "/shops/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &detail)
	assert.Equal(t, int64(1), detail.ShopID)
	assert.Equal(t, 0, detail.SubscriberCount)
	assert.False(t, detail.IsSubscribed)

	rec = doRequest(e, http.MethodPost, "/shops/1/subscribe", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/shops/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &detail)
	assert.Equal(t, 1, detail.SubscriberCount)
	assert.True(t, detail.IsSubscribed)

	// Double subscribe conflicts.
	rec = doRequest(e, http.MethodPost, "/shops/1/subscribe", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "ALREADY_SUBSCRIBED", envelope.Error.Code)

	rec = doRequest(e, http.MethodPost, "/shops/1/unsubscribe", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/shops/1/unsubscribe", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_UnknownShop(t *testing.T) {
	e := newTestServer(t)
	token := login(t, e)

	rec := doRequest(e, http.MethodGet, "/shops/999", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "SHOP_NOT_FOUND", envelope.Error.Code)
}
