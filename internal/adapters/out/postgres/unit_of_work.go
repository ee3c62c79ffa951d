// Package postgres provides the GORM-based Unit of Work and the database
// bootstrap (connection, schema migration, gorm logging onto slog).
//
// A unit of work hands out repositories bound to its transaction once Begin
// has been called, and bound to the plain connection before that:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.RouteRepository().Add(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork.
package postgres

import (
	"context"
	"log/slog"

	"capsule/internal/adapters/out/postgres/addressrepo"
	"capsule/internal/adapters/out/postgres/locationrepo"
	"capsule/internal/adapters/out/postgres/routerepo"
	"capsule/internal/adapters/out/postgres/trackingrepo"
	"capsule/internal/core/domain/model/route"
	"capsule/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.RoutePublisher
	logger    *slog.Logger
}

type UnitOfWorkOption func(*GormUnitOfWorkFactory)

// WithRoutePublisher announces every route added through a unit of work once
// its transaction has committed. Publish failures are logged.
func WithRoutePublisher(publisher ports.RoutePublisher, logger *slog.Logger) UnitOfWorkOption {
	return func(f *GormUnitOfWorkFactory) {
		f.publisher = publisher
		f.logger = logger.With("component", "unit_of_work")
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...UnitOfWorkOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create with the concrete type, which also satisfies the
// narrower per-handler unit of work interfaces.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates one database transaction and holds back the
// routes written in it until the commit.
type GormUnitOfWork struct {
	db            *gorm.DB
	tx            *gorm.DB
	publisher     ports.RoutePublisher
	logger        *slog.Logger
	pendingRoutes []*route.Route
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
// Routes added in the transaction are published only after it committed.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	pending := uow.pendingRoutes
	uow.pendingRoutes = nil
	if err != nil {
		return err
	}

	for _, r := range pending {
		uow.publish(ctx, r)
	}
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes it safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.pendingRoutes = nil
	return err
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return &announcingRouteRepository{
		RouteRepository: routerepo.NewGormRouteRepository(uow.conn()),
		uow:             uow,
	}
}

func (uow *GormUnitOfWork) PositionRepository() ports.PositionRepository {
	return trackingrepo.NewGormPositionRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// routeAdded queues r for the commit, or publishes it right away when the
// write ran outside a transaction.
func (uow *GormUnitOfWork) routeAdded(ctx context.Context, r *route.Route) {
	if uow.publisher == nil {
		return
	}
	if uow.tx == nil {
		uow.publish(ctx, r)
		return
	}
	uow.pendingRoutes = append(uow.pendingRoutes, r)
}

func (uow *GormUnitOfWork) publish(ctx context.Context, r *route.Route) {
	if err := uow.publisher.PublishRouteCreated(ctx, r); err != nil {
		uow.logger.WarnContext(ctx, "failed to publish route created event",
			"route_id", r.ID().String(), "error", err)
	}
}

type announcingRouteRepository struct {
	ports.RouteRepository
	uow *GormUnitOfWork
}

func (r *announcingRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := r.RouteRepository.Add(ctx, aggregate); err != nil {
		return err
	}
	r.uow.routeAdded(ctx, aggregate)
	return nil
}
