package commands_test

import (
	"context"
	"sync"
	"time"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"
	"capsule/internal/core/domain/model/route"
	"capsule/internal/core/domain/model/tracking"
	"capsule/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) GetOrCreateCountry(ctx context.Context, c *location.Country) (*location.Country, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Country), args.Error(1)
}

func (m *MockLocationRepository) GetOrCreateState(ctx context.Context, s *location.State) (*location.State, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.State), args.Error(1)
}

func (m *MockLocationRepository) GetOrCreateCity(ctx context.Context, c *location.City) (*location.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.City), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) GetOrCreate(ctx context.Context, a *location.Address) (*location.Address, error) {
	args := m.Called(ctx, a)
	if fn, ok := args.Get(0).(func(*location.Address) *location.Address); ok {
		return fn(a), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Address), args.Error(1)
}

// returnSame makes GetOrCreate behave as if the candidate was inserted.
func returnSame(a *location.Address) *location.Address { return a }

func (m *MockAddressRepository) Get(ctx context.Context, userID string, id kernel.UUID) (*location.Address, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Address), args.Error(1)
}

func (m *MockAddressRepository) Update(ctx context.Context, a *location.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, userID string, id kernel.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockAddressRepository) ClearDefault(ctx context.Context, userID string, keep kernel.UUID) error {
	args := m.Called(ctx, userID, keep)
	return args.Error(0)
}

func (m *MockAddressRepository) GetPendingValidation(
	ctx context.Context, after *kernel.UUID, limit int,
) ([]ports.PendingAddress, error) {
	args := m.Called(ctx, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PendingAddress), args.Error(1)
}

func (m *MockAddressRepository) MarkValidated(
	ctx context.Context, id kernel.UUID, coordinate kernel.Coordinate, seenUpdatedAt time.Time,
) (bool, error) {
	args := m.Called(ctx, id, coordinate, seenUpdatedAt)
	return args.Bool(0), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}
func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockRouteUoW struct{ mock.Mock }

func (m *MockRouteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRouteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRouteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) Add(ctx context.Context, p *tracking.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTrackingUoW) PositionRepository() ports.PositionRepository {
	args := m.Called()
	return args.Get(0).(ports.PositionRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockDirectionsClient struct{ mock.Mock }

func (m *MockDirectionsClient) Optimize(
	ctx context.Context, origin kernel.Coordinate, stops []kernel.Coordinate, destination kernel.Coordinate,
) (ports.OptimizedRoute, error) {
	args := m.Called(ctx, origin, stops, destination)
	return args.Get(0).(ports.OptimizedRoute), args.Error(1)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(ports.GeocodeResult), args.Error(1)
}

// fakeLocationRepository keeps reference rows in memory keyed by natural key.
type fakeLocationRepository struct {
	mu        sync.Mutex
	countries map[string]*location.Country
	states    map[string]*location.State
	cities    map[string]*location.City
	calls     int
}

func newFakeLocationRepository() *fakeLocationRepository {
	return &fakeLocationRepository{
		countries: make(map[string]*location.Country),
		states:    make(map[string]*location.State),
		cities:    make(map[string]*location.City),
	}
}

func (f *fakeLocationRepository) GetOrCreateCountry(
	_ context.Context, candidate *location.Country,
) (*location.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if existing, ok := f.countries[candidate.Code()]; ok {
		return existing, nil
	}
	f.countries[candidate.Code()] = candidate
	return candidate, nil
}

func (f *fakeLocationRepository) GetOrCreateState(_ context.Context, candidate *location.State) (*location.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	key := candidate.CountryID().String() + "|" + candidate.Name()
	if existing, ok := f.states[key]; ok {
		return existing, nil
	}
	f.states[key] = candidate
	return candidate, nil
}

func (f *fakeLocationRepository) GetOrCreateCity(_ context.Context, candidate *location.City) (*location.City, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	key := candidate.CountryID().String() + "|" + candidate.StateID().String() + "|" + candidate.Name()
	if existing, ok := f.cities[key]; ok {
		return existing, nil
	}
	f.cities[key] = candidate
	return candidate, nil
}
