package postgres

import (
	"fmt"
	"log/slog"

	"capsule/internal/adapters/out/postgres/addressrepo"
	"capsule/internal/adapters/out/postgres/locationrepo"
	"capsule/internal/adapters/out/postgres/routerepo"
	"capsule/internal/adapters/out/postgres/trackingrepo"

	"github.com/pkg/errors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the connection settings read from DB_* variables.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Debug    bool
}

func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open connects with error translation enabled, so unique and foreign key
// violations surface as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	return OpenDSN(cfg.DSN(), logger, cfg.Debug)
}

func OpenDSN(dsn string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	return db, nil
}

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&locationrepo.CountryDTO{},
		&locationrepo.StateDTO{},
		&locationrepo.CityDTO{},
		&addressrepo.AddressDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteStopDTO{},
		&trackingrepo.PositionDTO{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
