// Package http exposes the address, tracking and routing use cases over echo.
// Routes, parameter binding and the request and response types come from the
// generated servers package; Server implements servers.ServerInterface.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/tracking"
	"capsule/internal/core/ports"
	"capsule/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UserIDHeader carries the authenticated user id set by the upstream gateway.
// For tracking endpoints the same id names the provider.
const UserIDHeader = "X-User-ID"

type (
	createAddressHandler interface {
		Handle(ctx context.Context, cmd commands.CreateAddressCommand) (kernel.UUID, error)
	}
	updateAddressHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateAddressCommand) error
	}
	deleteAddressHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteAddressCommand) error
	}
	createRouteHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRouteCommand) (commands.CreateRouteResult, error)
	}
	recordPositionHandler interface {
		Handle(ctx context.Context, cmd commands.RecordPositionCommand) (*tracking.Position, error)
	}
	listAddressesHandler interface {
		Handle(ctx context.Context, query queries.ListAddressesQuery) ([]queries.AddressView, error)
	}
	getAddressHandler interface {
		Handle(ctx context.Context, query queries.GetAddressQuery) (queries.AddressView, error)
	}
	getRouteHandler interface {
		Handle(ctx context.Context, query queries.GetRouteQuery) (queries.RouteView, error)
	}
	validateAddressHandler interface {
		Handle(ctx context.Context, query queries.ValidateAddressQuery) (ports.GeocodeResult, error)
	}
	listPositionsHandler interface {
		Handle(ctx context.Context, query queries.ListPositionsQuery) ([]queries.PositionView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateAddress   createAddressHandler
	UpdateAddress   updateAddressHandler
	DeleteAddress   deleteAddressHandler
	CreateRoute     createRouteHandler
	RecordPosition  recordPositionHandler
	ListAddresses   listAddressesHandler
	GetAddress      getAddressHandler
	GetRoute        getRouteHandler
	ValidateAddress validateAddressHandler
	ListPositions   listPositionsHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with request logging, panic recovery and
// error bodies rendered as servers.Error.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			} else if v.Status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	return e
}

// RegisterRoutes validates requests against the embedded OpenAPI document and
// mounts every operation on e.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	validate, err := NewRequestValidator()
	if err != nil {
		return err
	}

	e.Use(validate)
	servers.RegisterHandlers(e, s)
	return nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// userID is the caller id. The request validator has already rejected
// requests to secured operations that lack it.
func userID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
}
