package queries_test

import (
	"context"
	"testing"
	"time"

	"capsule/internal/adapters/out/postgres"
	"capsule/internal/adapters/out/postgres/pgtest"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"
	"capsule/internal/core/domain/model/route"
	"capsule/internal/core/domain/model/tracking"
	"capsule/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListAddresses_FlatAndOwnerScoped() {
	ctx := context.Background()
	first := suite.storeAddress("user-1", "1 Main St", nil)
	coordinate, err := kernel.NewCoordinate(41.88, -87.63)
	suite.Require().NoError(err)
	second := suite.storeAddress("user-1", "2 Main St", &coordinate)
	suite.storeAddress("user-2", "3 Main St", nil)

	query, err := queries.NewListAddressesQuery("user-1")
	suite.Require().NoError(err)
	views, err := queries.NewListAddressesQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.True(views[0].ID.IsEqual(first.ID()))
	suite.Equal("1 Main St", views[0].AddressLine1)
	suite.Equal("CHICAGO", views[0].City)
	suite.Equal("IL", views[0].State)
	suite.Equal("US", views[0].Country)
	suite.Nil(views[0].Latitude)

	suite.True(views[1].ID.IsEqual(second.ID()))
	suite.Require().NotNil(views[1].Latitude)
	suite.InDelta(41.88, *views[1].Latitude, 1e-9)
	suite.InDelta(-87.63, *views[1].Longitude, 1e-9)
}

func (suite *QueriesIntegrationTestSuite) TestListAddresses_EmptyIsNotNil() {
	query, err := queries.NewListAddressesQuery("nobody")
	suite.Require().NoError(err)

	views, err := queries.NewListAddressesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) TestGetAddress_ForeignAndMissingAreIdentical() {
	ctx := context.Background()
	stored := suite.storeAddress("user-1", "1 Main St", nil)
	handler := queries.NewGetAddressQueryHandler(suite.db)

	query, err := queries.NewGetAddressQuery("user-1", stored.ID())
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("60601", view.PostalCode)

	foreign, err := queries.NewGetAddressQuery("user-2", stored.ID())
	suite.Require().NoError(err)
	_, foreignErr := handler.Handle(ctx, foreign)

	missing, err := queries.NewGetAddressQuery("user-1", kernel.NewUUID())
	suite.Require().NoError(err)
	_, missingErr := handler.Handle(ctx, missing)

	suite.Require().ErrorIs(foreignErr, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(missingErr, errs.ErrObjectNotFound)
	suite.Equal(errs.KindOf(foreignErr), errs.KindOf(missingErr))
}

func (suite *QueriesIntegrationTestSuite) TestGetRoute_StopsInSequenceOrder() {
	ctx := context.Background()
	delivery := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)

	stops := make([]route.Stop, 0, 3)
	for i, address := range []string{"C", "A", "B"} {
		var dt *time.Time
		if i == 1 {
			dt = &delivery
		}
		stop, err := route.NewStop(i, suite.waypoint(address, float64(i+1)), dt)
		suite.Require().NoError(err)
		stops = append(stops, stop)
	}
	r, err := route.NewRoute("Morning", suite.waypoint("Depot", 0), suite.waypoint("Yard", 10), stops)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().RouteRepository().Add(ctx, r))

	query, err := queries.NewGetRouteQuery(r.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Morning", view.Name)
	suite.Equal("Depot", view.Origin.Address)
	suite.InDelta(10.0, view.Destination.Latitude, 1e-9)
	suite.Require().Len(view.Stops, 3)
	for i, want := range []string{"C", "A", "B"} {
		suite.Equal(i, view.Stops[i].Sequence)
		suite.Equal(want, view.Stops[i].Address)
	}
	suite.Nil(view.Stops[0].DeliveryTime)
	suite.Require().NotNil(view.Stops[1].DeliveryTime)
	suite.True(view.Stops[1].DeliveryTime.Equal(delivery))
}

func (suite *QueriesIntegrationTestSuite) TestGetRoute_Missing() {
	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetRouteQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListPositions_NewestFirstAndProviderScoped() {
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	suite.storePosition("courier-1", 1, base)
	suite.storePosition("courier-1", 3, base.Add(2*time.Minute))
	suite.storePosition("courier-1", 2, base.Add(time.Minute))
	suite.storePosition("courier-2", 9, base.Add(time.Hour))

	query, err := queries.NewListPositionsQuery("courier-1", 0)
	suite.Require().NoError(err)
	views, err := queries.NewListPositionsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 3)
	for i, lat := range []float64{3, 2, 1} {
		suite.Equal("courier-1", views[i].ProviderID)
		suite.InDelta(lat, views[i].Latitude, 1e-9)
	}
	suite.True(views[0].RecordedAt.Equal(base.Add(2 * time.Minute)))
	suite.Equal(time.UTC, views[0].RecordedAt.Location())
	suite.NoError(views[0].ID.Validate())
}

func (suite *QueriesIntegrationTestSuite) TestListPositions_Limit() {
	base := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		suite.storePosition("courier-1", float64(i), base.Add(time.Duration(i)*time.Minute))
	}

	query, err := queries.NewListPositionsQuery("courier-1", 2)
	suite.Require().NoError(err)
	views, err := queries.NewListPositionsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.InDelta(4.0, views[0].Latitude, 1e-9)
	suite.InDelta(3.0, views[1].Latitude, 1e-9)
}

func (suite *QueriesIntegrationTestSuite) TestListPositions_EmptyIsNotNil() {
	query, err := queries.NewListPositionsQuery("nobody", 0)
	suite.Require().NoError(err)

	views, err := queries.NewListPositionsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) storePosition(providerID string, lat float64, at time.Time) {
	coordinate, err := kernel.NewCoordinate(lat, lat)
	suite.Require().NoError(err)
	position, err := tracking.NewPosition(providerID, coordinate, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().PositionRepository().Add(context.Background(), position))
}

func (suite *QueriesIntegrationTestSuite) storeAddress(
	userID, line1 string, coordinate *kernel.Coordinate,
) *location.Address {
	ctx := context.Background()
	uow := suite.factory.Create()
	locations := uow.LocationRepository()

	countryCandidate, err := location.NewCountry("US")
	suite.Require().NoError(err)
	country, err := locations.GetOrCreateCountry(ctx, countryCandidate)
	suite.Require().NoError(err)
	stateCandidate, err := location.NewState(country.ID(), "IL")
	suite.Require().NoError(err)
	state, err := locations.GetOrCreateState(ctx, stateCandidate)
	suite.Require().NoError(err)
	cityCandidate, err := location.NewCity(country.ID(), state.ID(), "CHICAGO")
	suite.Require().NoError(err)
	city, err := locations.GetOrCreateCity(ctx, cityCandidate)
	suite.Require().NoError(err)
	place, err := location.NewPlace(country, state, city)
	suite.Require().NoError(err)

	address, err := location.NewAddress(userID, place, line1, "", "60601")
	suite.Require().NoError(err)
	suite.Require().NoError(address.SetCoordinate(coordinate))

	stored, err := uow.AddressRepository().GetOrCreate(ctx, address)
	suite.Require().NoError(err)
	return stored
}

func (suite *QueriesIntegrationTestSuite) waypoint(address string, lat float64) route.Waypoint {
	coordinate, err := kernel.NewCoordinate(lat, lat)
	suite.Require().NoError(err)
	waypoint, err := route.NewWaypoint(address, coordinate)
	suite.Require().NoError(err)
	return waypoint
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
