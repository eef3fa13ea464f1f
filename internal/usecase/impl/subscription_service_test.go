package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	mockRepo "nearshop/internal/mocks/repository"
	"nearshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T, repo *mockRepo.MockShopRepository) usecase.SubscriptionUsecase {
	t.Helper()

	return NewSubscriptionService(SubscriptionServiceParams{
		ShopRepo: repo,
		Logger:   newTestLogger(),
	})
}

func enrichedShop(subscribed bool, count int) *entity.EnrichedShop {
	return &entity.EnrichedShop{
		ShopSummary: entity.ShopSummary{ID: 10, Name: "Kumar Stores", Address: "12 Mount Road"},
		Detail:      &entity.ShopDetail{ShopID: 10, SubscriberCount: count, IsSubscribed: subscribed},
	}
}

func TestSubscriptionService_Toggle_RequiresSession(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	coordinator := newCoordinator(t, repo)

	shop := enrichedShop(false, 4)

	err := coordinator.Toggle(context.Background(), nil, shop)
	require.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)

	// No state change, no network call.
	assert.False(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 4, shop.Detail.SubscriberCount)
	repo.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_Toggle_UnknownDetail(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	coordinator := newCoordinator(t, repo)

	shop := &entity.EnrichedShop{ShopSummary: entity.ShopSummary{ID: 10}}

	err := coordinator.Toggle(context.Background(), testSession(), shop)
	require.ErrorIs(t, err, domainerrors.ErrShopDetailUnknown)
}

func TestSubscriptionService_Toggle_SubscribeSuccess(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(false, 4)

	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(10)).Return(nil)

	coordinator := newCoordinator(t, repo)

	err := coordinator.Toggle(context.Background(), session, shop)
	require.NoError(t, err)

	// Optimistic state stands, no re-fetch required.
	assert.True(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 5, shop.Detail.SubscriberCount)
	assert.False(t, coordinator.Pending(10))
}

func TestSubscriptionService_Toggle_SubscribeFailureRollsBack(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(false, 4)

	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(10)).Return(errors.New("boom"))

	coordinator := newCoordinator(t, repo)

	err := coordinator.Toggle(context.Background(), session, shop)
	require.Error(t, err)

	// Reverted to the exact pre-toggle state.
	assert.False(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 4, shop.Detail.SubscriberCount)
	assert.False(t, coordinator.Pending(10))
}

func TestSubscriptionService_Toggle_UnsubscribeSuccess(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(true, 5)

	repo.EXPECT().Unsubscribe(mock.Anything, session.Token, int64(10)).Return(nil)

	coordinator := newCoordinator(t, repo)

	err := coordinator.Toggle(context.Background(), session, shop)
	require.NoError(t, err)
	assert.False(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 4, shop.Detail.SubscriberCount)
}

func TestSubscriptionService_Toggle_UnsubscribeFloorsAtZero(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(true, 0)

	repo.EXPECT().Unsubscribe(mock.Anything, session.Token, int64(10)).Return(nil)

	coordinator := newCoordinator(t, repo)

	err := coordinator.Toggle(context.Background(), session, shop)
	require.NoError(t, err)
	assert.False(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 0, shop.Detail.SubscriberCount)
}

func TestSubscriptionService_Toggle_OptimisticStateVisibleWhileInFlight(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(false, 4)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(10)).RunAndReturn(func(context.Context, string, int64) error {
		close(entered)
		<-release

		return nil
	})

	coordinator := newCoordinator(t, repo)

	done := make(chan error, 1)
	go func() {
		done <- coordinator.Toggle(context.Background(), session, shop)
	}()

	<-entered
	// The flip is already visible and the id is marked pending.
	assert.True(t, coordinator.Pending(10))

	close(release)
	require.NoError(t, <-done)
	assert.True(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 5, shop.Detail.SubscriberCount)
	assert.False(t, coordinator.Pending(10))
}

func TestSubscriptionService_Toggle_SameShopExclusive(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	shop := enrichedShop(false, 4)

	var (
		mu    sync.Mutex
		calls int
	)
	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(10)).RunAndReturn(func(context.Context, string, int64) error {
		mu.Lock()
		calls++
		mu.Unlock()
		close(entered)
		<-release

		return nil
	})

	coordinator := newCoordinator(t, repo)

	done := make(chan error, 1)
	go func() {
		done <- coordinator.Toggle(context.Background(), session, shop)
	}()
	<-entered

	// Second toggle while the first is in flight is a no-op.
	require.NoError(t, coordinator.Toggle(context.Background(), session, shop))

	close(release)
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.True(t, shop.Detail.IsSubscribed)
	assert.Equal(t, 5, shop.Detail.SubscriberCount)
}

func TestSubscriptionService_Toggle_DifferentShopsOverlap(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	first := enrichedShop(false, 1)
	second := &entity.EnrichedShop{
		ShopSummary: entity.ShopSummary{ID: 11, Name: "Fresh Mart"},
		Detail:      &entity.ShopDetail{ShopID: 11, SubscriberCount: 9},
	}

	firstEntered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(10)).RunAndReturn(func(context.Context, string, int64) error {
		close(firstEntered)
		<-release

		return nil
	})
	repo.EXPECT().Subscribe(mock.Anything, session.Token, int64(11)).Return(nil)

	coordinator := newCoordinator(t, repo)

	done := make(chan error, 1)
	go func() {
		done <- coordinator.Toggle(context.Background(), session, first)
	}()
	<-firstEntered

	// A different shop id is not blocked by the first in-flight toggle.
	finished := make(chan error, 1)
	go func() {
		finished <- coordinator.Toggle(context.Background(), session, second)
	}()

	select {
	case err := <-finished:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("toggle for a different shop id was blocked")
	}

	close(release)
	require.NoError(t, <-done)
	assert.True(t, second.Detail.IsSubscribed)
	assert.Equal(t, 10, second.Detail.SubscriberCount)
}
