package geocoder

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/sentinel"
)

type mapStore struct {
	mu     sync.Mutex
	items  map[string][]models.Establishment
	puts   int
	getErr error
}

func newMapStore() *mapStore {
	return &mapStore{items: make(map[string][]models.Establishment)}
}

func (s *mapStore) Get(_ context.Context, key string) ([]models.Establishment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	items, ok := s.items[key]
	if !ok {
		return nil, sentinel.ErrCacheMiss
	}
	return models.CloneEstablishments(items), nil
}

func (s *mapStore) Put(_ context.Context, key string, items []models.Establishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	s.items[key] = models.CloneEstablishments(items)
	return nil
}

type SessionCacheSuite struct {
	suite.Suite
	store    *mapStore
	resolver *recordingResolver
	pacer    *countingPacer
	cache    *SessionCache
}

func TestSessionCacheSuite(t *testing.T) {
	suite.Run(t, new(SessionCacheSuite))
}

func (s *SessionCacheSuite) SetupTest() {
	s.store = newMapStore()
	s.resolver = &recordingResolver{}
	s.pacer = &countingPacer{}
	s.cache = NewSessionCache(s.store, NewBatch(s.resolver, s.pacer))
}

func (s *SessionCacheSuite) TestSecondCallWithSameKeyMakesNoProviderCalls() {
	ctx := context.Background()

	first, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.Require().NoError(err)
	s.Equal(2, s.resolver.count())
	s.Equal(2, s.pacer.waits)

	second, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.Require().NoError(err)
	s.Equal(2, s.resolver.count())
	s.Equal(2, s.pacer.waits)
	s.Equal(first, second)
	s.Equal(1, s.store.puts)
}

func (s *SessionCacheSuite) TestNewSessionKeyIsAMiss() {
	ctx := context.Background()

	_, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.Require().NoError(err)
	_, err = s.cache.Geocode(ctx, "search-2", establishments())
	s.Require().NoError(err)

	s.Equal(4, s.resolver.count())
}

func (s *SessionCacheSuite) TestChangedInputUnderSameSessionIsAMiss() {
	ctx := context.Background()
	items := establishments()

	_, err := s.cache.Geocode(ctx, "search-1", items)
	s.Require().NoError(err)
	_, err = s.cache.Geocode(ctx, "search-1", items[:1])
	s.Require().NoError(err)

	s.Equal(3, s.resolver.count())
}

func (s *SessionCacheSuite) TestEmptySessionKeyBypassesCache() {
	ctx := context.Background()

	_, err := s.cache.Geocode(ctx, "", establishments())
	s.Require().NoError(err)
	_, err = s.cache.Geocode(ctx, "", establishments())
	s.Require().NoError(err)

	s.Equal(4, s.resolver.count())
	s.Zero(s.store.puts)
}

func (s *SessionCacheSuite) TestCallersCannotMutateCachedEntry() {
	ctx := context.Background()

	first, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.Require().NoError(err)
	*first[0].Latitude = 0

	second, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.Require().NoError(err)
	s.Equal(48.85, *second[0].Latitude)
}

func (s *SessionCacheSuite) TestCancelledBatchIsNotStored() {
	ctx, cancel := context.WithCancel(context.Background())
	s.resolver.onCall = cancel

	_, err := s.cache.Geocode(ctx, "search-1", establishments())
	s.ErrorIs(err, context.Canceled)
	s.Zero(s.store.puts)

	s.resolver.onCall = nil
	out, err := s.cache.Geocode(context.Background(), "search-1", establishments())
	s.Require().NoError(err)
	s.True(out[1].HasCoordinates())
}

func (s *SessionCacheSuite) TestStoreFailureFallsBackToResolving() {
	s.store.getErr = errors.New("connection refused")

	out, err := s.cache.Geocode(context.Background(), "search-1", establishments())

	s.Require().NoError(err)
	s.True(out[0].HasCoordinates())
	s.Equal(2, s.resolver.count())
}

func (s *SessionCacheSuite) TestConcurrentSameKeyResolvesOnce() {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	s.resolver.onCall = func() {
		once.Do(func() { close(started) })
		<-release
	}

	var wg sync.WaitGroup
	results := make([][]models.Establishment, 2)
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = s.cache.Geocode(context.Background(), "search-1", establishments())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = s.cache.Geocode(context.Background(), "search-1", establishments())
	}()
	close(release)
	wg.Wait()

	s.Require().NoError(errs[0])
	s.Require().NoError(errs[1])
	s.Equal(2, s.resolver.count())
	s.Equal(1, s.store.puts)
	s.Equal(results[0], results[1])
}
