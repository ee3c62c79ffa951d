package ports

import (
	"context"

	"capsule/internal/core/domain/model/route"
)

// RoutePublisher announces committed routes to other services.
type RoutePublisher interface {
	PublishRouteCreated(ctx context.Context, created *route.Route) error
}
