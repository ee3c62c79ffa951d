package cmd

import (
	"log/slog"

	httpin "capsule/internal/adapters/in/http"
	"capsule/internal/adapters/out/googlemaps"
	"capsule/internal/adapters/out/kafka"
	"capsule/internal/adapters/out/postgres"
	"capsule/internal/adapters/out/rediscache"
	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/services"
	"capsule/internal/core/ports"
	"capsule/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	config     Config

	geocoder   ports.Geocoder
	directions ports.DirectionsClient
	publisher  ports.RoutePublisher

	closers []func() error
}

// NewCompositionRoot builds the provider clients. Redis and kafka are only
// connected when configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		gormDB: gormDB,
		logger: logger,
		config: config,
	}

	googleConfig := googlemaps.Config{
		APIKey:  config.GoogleMapsAPIKey,
		BaseURL: config.GoogleMapsBaseURL,
		Timeout: config.ProviderTimeout,
	}
	c.directions = googlemaps.NewDirectionsClient(googleConfig)
	c.geocoder = googlemaps.NewGeocodingClient(googleConfig)

	if config.RedisAddr != "" {
		var rdb redis.UniversalClient = rediscache.NewClient(config.RedisAddr)
		c.geocoder = rediscache.NewCachingGeocoder(c.geocoder, rdb, config.GeocodeCacheTTL, logger)
		c.closers = append(c.closers, rdb.Close)
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher := kafka.NewRoutePublisher(brokers, config.KafkaRouteCreatedTopic)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	} else {
		c.publisher = kafka.NopRoutePublisher{}
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithRoutePublisher(c.publisher, logger))

	return c
}

// Close releases the redis and kafka connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) addressUoWFactory() commands.AddressUoWFactory {
	return FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() *commands.CreateAddressCommandHandler {
	h := commands.NewCreateAddressCommandHandler(c.addressUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() *commands.UpdateAddressCommandHandler {
	h := commands.NewUpdateAddressCommandHandler(c.addressUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteAddressCommandHandler() *commands.DeleteAddressCommandHandler {
	h := commands.NewDeleteAddressCommandHandler(c.addressUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() *commands.CreateRouteCommandHandler {
	h := commands.NewCreateRouteCommandHandler(
		c.routeUoWFactory(),
		c.directions,
		services.NewStopSequencer("google directions"),
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateRecordPositionCommandHandler() *commands.RecordPositionCommandHandler {
	h := commands.NewRecordPositionCommandHandler(c.trackingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateValidatePendingAddressesCommandHandler() *commands.ValidatePendingAddressesCommandHandler {
	h := commands.NewValidatePendingAddressesCommandHandler(c.addressUoWFactory(), c.geocoder, c.logger)
	return &h
}

func (c *CompositionRoot) CreateListAddressesQueryHandler() queries.ListAddressesQueryHandler {
	return queries.NewListAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAddressQueryHandler() queries.GetAddressQueryHandler {
	return queries.NewGetAddressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPositionsQueryHandler() queries.ListPositionsQueryHandler {
	return queries.NewListPositionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidateAddressQueryHandler() queries.ValidateAddressQueryHandler {
	return queries.NewValidateAddressQueryHandler(c.geocoder)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateAddress:   c.CreateCreateAddressCommandHandler(),
		UpdateAddress:   c.CreateUpdateAddressCommandHandler(),
		DeleteAddress:   c.CreateDeleteAddressCommandHandler(),
		CreateRoute:     c.CreateCreateRouteCommandHandler(),
		ListAddresses:   c.CreateListAddressesQueryHandler(),
		GetAddress:      c.CreateGetAddressQueryHandler(),
		GetRoute:        c.CreateGetRouteQueryHandler(),
		ValidateAddress: c.CreateValidateAddressQueryHandler(),
		RecordPosition:  c.CreateRecordPositionCommandHandler(),
		ListPositions:   c.CreateListPositionsQueryHandler(),
	}, c.logger)
}

// CreateJobManager returns a manager holding the address validation job, or
// an empty manager when the schedule is disabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.config.AddressValidationSchedule == "" {
		return jobs.NewJobManager()
	}

	return jobs.NewJobManager(jobs.NewAddressValidationJob(
		c.CreateValidatePendingAddressesCommandHandler(),
		c.config.AddressValidationSchedule,
		c.config.AddressValidationBatchSize,
		c.logger,
	))
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}
