package shopstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nearshop/config"
	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCenter = entity.Position{Latitude: 13.0827, Longitude: 80.2707}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Stub = &config.StubConfig{SecretKey: "test_secret", BcryptCost: 4}

	store, err := NewStore(StoreParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hasher: auth.NewBcryptHasher(cfg),
	})
	require.NoError(t, err)

	return store
}

func TestStore_ListNearby_OrderedAndBounded(t *testing.T) {
	store := newTestStore(t)

	summaries, err := store.ListNearby(context.Background(), testCenter, 5000, 20)
	assert.NoError(t, err)
	assert.NotEmpty(t, summaries)

	for i, summary := range summaries {
		assert.LessOrEqual(t, summary.DistanceMeters, 5000.0)
		if i > 0 {
			assert.GreaterOrEqual(t, summary.DistanceMeters, summaries[i-1].DistanceMeters)
		}
	}
}

func TestStore_ListNearby_RadiusWidensResults(t *testing.T) {
	store := newTestStore(t)

	narrow, err := store.ListNearby(context.Background(), testCenter, 1000, 20)
	assert.NoError(t, err)
	wide, err := store.ListNearby(context.Background(), testCenter, 20000, 20)
	assert.NoError(t, err)

	assert.Greater(t, len(wide), len(narrow))
}

func TestStore_ListNearby_Limit(t *testing.T) {
	store := newTestStore(t)

	summaries, err := store.ListNearby(context.Background(), testCenter, 20000, 3)
	assert.NoError(t, err)
	assert.Len(t, summaries, 3)
}

func TestStore_SubscribeLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	detail, err := store.GetDetail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.SubscriberCount)
	assert.False(t, detail.IsSubscribed)

	require.NoError(t, store.Subscribe(ctx, 1, 1))
	require.NoError(t, store.Subscribe(ctx, 2, 1))

	detail, err = store.GetDetail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.SubscriberCount)
	assert.True(t, detail.IsSubscribed)

	// Another user sees the count but not the subscription flag.
	detail, err = store.GetDetail(ctx, 99, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.SubscriberCount)
	assert.False(t, detail.IsSubscribed)

	require.NoError(t, store.Unsubscribe(ctx, 1, 1))
	detail, err = store.GetDetail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.SubscriberCount)
	assert.False(t, detail.IsSubscribed)
}

func TestStore_SubscribeConflicts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Subscribe(ctx, 1, 2))
	assert.True(t, errors.Is(store.Subscribe(ctx, 1, 2), domainerrors.ErrAlreadySubscribed))
	assert.True(t, errors.Is(store.Unsubscribe(ctx, 99, 2), domainerrors.ErrNotSubscribed))
}

func TestStore_UnknownShop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetDetail(ctx, 1, 999)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
	assert.True(t, errors.Is(store.Subscribe(ctx, 1, 999), domainerrors.ErrShopNotFound))
	assert.True(t, errors.Is(store.Unsubscribe(ctx, 1, 999), domainerrors.ErrShopNotFound))
}

func TestStore_FindByEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	account, err := store.FindByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.NotEmpty(t, account.PasswordHash)

	_, err = store.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
