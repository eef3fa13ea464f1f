// Package shopstore is the in-memory persistence layer behind the stub API
// server. It seeds a fixed set of shops around central Chennai and tracks
// subscriptions per account, so the discovery engine can be exercised
// end-to-end without a real backend.
package shopstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"nearshop/config"
	"nearshop/internal/domain/entity"
	domainerrors "nearshop/internal/domain/errors"
	"nearshop/internal/domain/repository"
	"nearshop/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shopRecord struct {
	id        int64
	name      string
	address   string
	latitude  float64
	longitude float64
}

// Store keeps shops, accounts and subscriptions in memory, guarded by a
// single mutex. It implements both DirectoryRepository and AccountRepository.
type Store struct {
	logger *slog.Logger

	mu          sync.RWMutex
	shops       []shopRecord
	accounts    map[string]*entity.Account
	subscribers map[int64]map[int64]struct{} // shop id -> set of user ids
}

// StoreParams defines the dependencies for the store.
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// NewStore builds a store seeded with demo shops and accounts.
func NewStore(params StoreParams) (*Store, error) {
	store := &Store{
		logger:      params.Logger,
		shops:       seedShops(),
		accounts:    make(map[string]*entity.Account),
		subscribers: make(map[int64]map[int64]struct{}),
	}
	for _, shop := range store.shops {
		store.subscribers[shop.id] = make(map[int64]struct{})
	}

	if err := store.seedAccounts(params.Hasher); err != nil {
		return nil, err
	}

	params.Logger.Info("Seeded shop store",
		slog.Int("shops", len(store.shops)),
		slog.Int("accounts", len(store.accounts)),
	)

	return store, nil
}

// NewDirectoryRepository exposes the store as a DirectoryRepository.
func NewDirectoryRepository(store *Store) repository.DirectoryRepository {
	return store
}

// NewAccountRepository exposes the store as an AccountRepository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return store
}

// ListNearby returns up to limit shops within radiusMeters of the position,
// ordered nearest first.
func (s *Store) ListNearby(ctx context.Context, position entity.Position, radiusMeters int, limit int) ([]entity.ShopSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]entity.ShopSummary, 0, limit)
	for _, shop := range s.shops {
		distance := geo.DistanceHaversine(position.Point(), shop.point())
		if distance > float64(radiusMeters) {
			continue
		}
		summaries = append(summaries, entity.ShopSummary{
			ID:             shop.id,
			Name:           shop.name,
			Address:        shop.address,
			Latitude:       shop.latitude,
			Longitude:      shop.longitude,
			DistanceMeters: distance,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].DistanceMeters < summaries[j].DistanceMeters
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}

// GetDetail returns the subscription view of one shop for the given user.
func (s *Store) GetDetail(ctx context.Context, userID int64, shopID int64) (*entity.ShopDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subscribers, ok := s.subscribers[shopID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrShopNotFound)
	}

	_, subscribed := subscribers[userID]

	return &entity.ShopDetail{
		ShopID:          shopID,
		SubscriberCount: len(subscribers),
		IsSubscribed:    subscribed,
	}, nil
}

// Subscribe records a subscription of the user to the shop.
func (s *Store) Subscribe(ctx context.Context, userID int64, shopID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers, ok := s.subscribers[shopID]
	if !ok {
		return errors.WithStack(domainerrors.ErrShopNotFound)
	}
	if _, subscribed := subscribers[userID]; subscribed {
		return errors.WithStack(domainerrors.ErrAlreadySubscribed)
	}

	subscribers[userID] = struct{}{}

	return nil
}

// Unsubscribe removes the subscription of the user to the shop.
func (s *Store) Unsubscribe(ctx context.Context, userID int64, shopID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscribers, ok := s.subscribers[shopID]
	if !ok {
		return errors.WithStack(domainerrors.ErrShopNotFound)
	}
	if _, subscribed := subscribers[userID]; !subscribed {
		return errors.WithStack(domainerrors.ErrNotSubscribed)
	}

	delete(subscribers, userID)

	return nil
}

// FindByEmail returns the account registered under the email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	copied := *account

	return &copied, nil
}

func (s *Store) seedAccounts(hasher service.PasswordHasher) error {
	seeds := []struct {
		id       int64
		email    string
		name     string
		password string
	}{
		{1, "demo@example.com", "Demo User", "DemoPass123!"},
		{2, "anitha@example.com", "Anitha R", "AnithaPass123!"},
	}

	for _, seed := range seeds {
		hash, err := hasher.Hash(seed.password)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}
		s.accounts[seed.email] = &entity.Account{
			ID:           seed.id,
			Email:        seed.email,
			Name:         seed.name,
			PasswordHash: hash,
		}
	}

	return nil
}

func (r shopRecord) point() orb.Point {
	return orb.Point{r.longitude, r.latitude}
}

// seedShops returns a fixed directory of shops around central Chennai.
func seedShops() []shopRecord {
	return []shopRecord{
		{1, "Kumar Stores", "12 Mount Road, Anna Salai", 13.0674, 80.2376},
		{2, "Fresh Mart", "3 Beach Road, Marina", 13.0500, 80.2824},
		{3, "Daily Needs", "7 Anna Salai, Teynampet", 13.0418, 80.2341},
		{4, "Sri Vari Supermarket", "21 NSC Bose Road, George Town", 13.0905, 80.2861},
		{5, "Green Grocers", "5 Usman Road, T. Nagar", 13.0410, 80.2337},
		{6, "Chennai Silks & More", "14 Ranganathan Street, T. Nagar", 13.0415, 80.2310},
		{7, "Marina Fish Market", "2 Kamarajar Salai, Marina", 13.0550, 80.2830},
		{8, "Mylapore Organics", "9 Luz Church Road, Mylapore", 13.0330, 80.2680},
		{9, "Egmore Provisions", "18 Pantheon Road, Egmore", 13.0732, 80.2609},
		{10, "Adyar Bakery", "33 Lattice Bridge Road, Adyar", 13.0063, 80.2574},
		{11, "Velachery Fresh", "41 Velachery Main Road", 12.9791, 80.2212},
		{12, "Porur Dairy", "8 Mount Poonamallee Road, Porur", 13.0382, 80.1565},
		{13, "Anna Nagar Greens", "2nd Avenue, Anna Nagar", 13.0850, 80.2101},
		{14, "Tambaram Wholesale", "1 GST Road, Tambaram", 12.9249, 80.1275},
		{15, "Central Spices", "27 Evening Bazaar Road, Park Town", 13.0823, 80.2755},
	}
}
