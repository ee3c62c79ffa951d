package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultHTTPPort                = "8080"
	defaultValidationSchedule      = "@every 5m"
	defaultValidationBatchSize     = 100
	defaultProviderTimeout         = 10 * time.Second
	defaultGeocodeCacheTTL         = 24 * time.Hour
	defaultKafkaRouteCreatedTopic  = "routes.created"
	validationScheduleDisabledFlag = "off"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" validate:"required,numeric"`
	DBHost     string `env:"DB_HOST" validate:"required"`
	DBPort     string `env:"DB_PORT" validate:"required,numeric"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	DBDebug    bool   `env:"DB_DEBUG"`

	GoogleMapsAPIKey  string        `env:"GOOGLE_MAPS_API_KEY" validate:"required"`
	GoogleMapsBaseURL string        `env:"GOOGLE_MAPS_BASE_URL" validate:"omitempty,url"`
	ProviderTimeout   time.Duration `env:"PROVIDER_TIMEOUT_SECONDS" validate:"gt=0"`

	RedisAddr       string        `env:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL_SECONDS" validate:"gt=0"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaRouteCreatedTopic string `env:"KAFKA_ROUTE_CREATED_TOPIC" validate:"required"`

	// AddressValidationSchedule is empty when the job is disabled.
	AddressValidationSchedule  string `env:"ADDRESS_VALIDATION_SCHEDULE"`
	AddressValidationBatchSize int    `env:"ADDRESS_VALIDATION_BATCH_SIZE" validate:"min=1"`
}

var configValidator = newConfigValidator()

// newConfigValidator reports fields by their environment variable name.
func newConfigValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate checks the loaded values and names the first offending variable.
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s is invalid (%s), got %q", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value()))
	}
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:               withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                 getenv("DB_HOST"),
		DBPort:                 withDefault(getenv("DB_PORT"), "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              getenv("DB_SSLMODE"),
		GoogleMapsAPIKey:       getenv("GOOGLE_MAPS_API_KEY"),
		GoogleMapsBaseURL:      getenv("GOOGLE_MAPS_BASE_URL"),
		RedisAddr:              getenv("REDIS_ADDR"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaRouteCreatedTopic: withDefault(getenv("KAFKA_ROUTE_CREATED_TOPIC"), defaultKafkaRouteCreatedTopic),
	}

	var err error
	if cfg.DBDebug, err = parseBool("DB_DEBUG", getenv("DB_DEBUG")); err != nil {
		return Config{}, err
	}
	if cfg.ProviderTimeout, err = parseSeconds(
		"PROVIDER_TIMEOUT_SECONDS", getenv("PROVIDER_TIMEOUT_SECONDS"), defaultProviderTimeout,
	); err != nil {
		return Config{}, err
	}
	if cfg.GeocodeCacheTTL, err = parseSeconds(
		"GEOCODE_CACHE_TTL_SECONDS", getenv("GEOCODE_CACHE_TTL_SECONDS"), defaultGeocodeCacheTTL,
	); err != nil {
		return Config{}, err
	}

	switch schedule := strings.TrimSpace(getenv("ADDRESS_VALIDATION_SCHEDULE")); {
	case schedule == "":
		cfg.AddressValidationSchedule = defaultValidationSchedule
	case strings.EqualFold(schedule, validationScheduleDisabledFlag):
		cfg.AddressValidationSchedule = ""
	default:
		cfg.AddressValidationSchedule = schedule
	}

	cfg.AddressValidationBatchSize = defaultValidationBatchSize
	if raw := getenv("ADDRESS_VALIDATION_BATCH_SIZE"); raw != "" {
		if cfg.AddressValidationBatchSize, err = strconv.Atoi(raw); err != nil {
			return Config{}, fmt.Errorf("ADDRESS_VALIDATION_BATCH_SIZE must be a positive integer, got %q", raw)
		}
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseSeconds(name, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", name, raw)
	}
	return time.Duration(n) * time.Second, nil
}

func parseBool(name, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, raw)
	}
	return v, nil
}
