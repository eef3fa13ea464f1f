package impl

import (
	"context"
	"testing"

	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/repository"
	mockRepo "nearshop/internal/mocks/repository"
	"nearshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newEnricher(t *testing.T, repo *mockRepo.MockShopRepository) usecase.EnrichmentUsecase {
	t.Helper()

	return NewEnrichmentService(EnrichmentServiceParams{
		ShopRepo: repo,
		Logger:   newTestLogger(),
	})
}

func testSummaries() []entity.ShopSummary {
	return []entity.ShopSummary{
		{ID: 1, Name: "Kumar Stores", Address: "12 Mount Road", Latitude: 13.08, Longitude: 80.27, DistanceMeters: 420},
		{ID: 2, Name: "Fresh Mart", Address: "3 Beach Road", Latitude: 13.09, Longitude: 80.28, DistanceMeters: 900},
		{ID: 3, Name: "Daily Needs", Address: "7 Anna Salai", Latitude: 13.07, Longitude: 80.26, DistanceMeters: 1500},
	}
}

func testSession() *entity.Session {
	return &entity.Session{UserID: 42, Email: "user@example.com", Token: "token-42"}
}

func TestEnrichmentService_Enrich_NoSession(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	enricher := newEnricher(t, repo)

	details := enricher.Enrich(context.Background(), testSummaries(), nil)
	assert.Empty(t, details)
	repo.AssertNotCalled(t, "GetShopDetail", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnrichmentService_Enrich_AllSucceed(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	summaries := testSummaries()

	for _, summary := range summaries {
		repo.EXPECT().
			GetShopDetail(mock.Anything, session.Token, summary.ID).
			Return(&entity.ShopDetail{ShopID: summary.ID, SubscriberCount: int(summary.ID) * 2}, nil)
	}

	enricher := newEnricher(t, repo)

	details := enricher.Enrich(context.Background(), summaries, session)
	assert.Len(t, details, 3)
	assert.Equal(t, 4, details[2].SubscriberCount)
}

func TestEnrichmentService_Enrich_UnauthorizedShopIsOmitted(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()

	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(1)).
		Return(&entity.ShopDetail{ShopID: 1, SubscriberCount: 5, IsSubscribed: true}, nil)
	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(2)).
		Return(nil, repository.ErrUnauthorized)
	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(3)).
		Return(&entity.ShopDetail{ShopID: 3, SubscriberCount: 0}, nil)

	enricher := newEnricher(t, repo)

	details := enricher.Enrich(context.Background(), testSummaries(), session)
	assert.Len(t, details, 2)
	assert.Contains(t, details, int64(1))
	assert.NotContains(t, details, int64(2))

	// Known-zero is present, distinct from unknown.
	detail, ok := details[3]
	assert.True(t, ok)
	assert.Equal(t, 0, detail.SubscriberCount)
}

func TestEnrichmentService_Enrich_OtherFailuresAreSwallowed(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()

	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(1)).
		Return(nil, errors.New("server exploded"))
	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(2)).
		Return(&entity.ShopDetail{ShopID: 2, SubscriberCount: 7}, nil)
	repo.EXPECT().
		GetShopDetail(mock.Anything, session.Token, int64(3)).
		Return(nil, errors.Wrap(repository.ErrUnauthorized, "get shop detail"))

	enricher := newEnricher(t, repo)

	details := enricher.Enrich(context.Background(), testSummaries(), session)
	assert.Len(t, details, 1)
	assert.Equal(t, 7, details[2].SubscriberCount)
}

func TestEnrichmentService_Enrich_KeySetIsSubsetOfInput(t *testing.T) {
	repo := mockRepo.NewMockShopRepository(t)
	session := testSession()
	summaries := testSummaries()

	ids := make(map[int64]struct{}, len(summaries))
	for _, summary := range summaries {
		ids[summary.ID] = struct{}{}
		repo.EXPECT().
			GetShopDetail(mock.Anything, session.Token, summary.ID).
			Return(&entity.ShopDetail{ShopID: summary.ID}, nil)
	}

	enricher := newEnricher(t, repo)

	details := enricher.Enrich(context.Background(), summaries, session)
	for id := range details {
		assert.Contains(t, ids, id)
	}
}
