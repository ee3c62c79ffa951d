package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"capsule/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRouteQueryHandler reads a route and its stops in sequence order.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	db := h.db.WithContext(ctx)
	view := RouteView{ID: query.RouteID()}

	err := db.Raw(`
		SELECT
			name,
			origin_address,
			origin_latitude,
			origin_longitude,
			destination_address,
			destination_latitude,
			destination_longitude,
			created_at
		FROM routes
		WHERE id = ?
	`, query.RouteID().Bytes()).Row().Scan(
		&view.Name,
		&view.Origin.Address,
		&view.Origin.Latitude,
		&view.Origin.Longitude,
		&view.Destination.Address,
		&view.Destination.Latitude,
		&view.Destination.Longitude,
		&view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RouteView{}, errs.NewObjectNotFoundError("route", query.RouteID().String())
		}
		return RouteView{}, err
	}

	rows, err := db.Raw(`
		SELECT
			sequence,
			address,
			latitude,
			longitude,
			delivery_time
		FROM route_stops
		WHERE route_id = ?
		ORDER BY sequence
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return RouteView{}, err
	}
	defer rows.Close()

	view.Stops = make([]StopView, 0)
	for rows.Next() {
		var (
			stop         StopView
			deliveryTime sql.NullTime
		)
		if err = rows.Scan(
			&stop.Sequence,
			&stop.Address,
			&stop.Latitude,
			&stop.Longitude,
			&deliveryTime,
		); err != nil {
			return RouteView{}, err
		}
		if deliveryTime.Valid {
			dt := deliveryTime.Time.In(time.UTC)
			stop.DeliveryTime = &dt
		}
		view.Stops = append(view.Stops, stop)
	}

	if err = rows.Err(); err != nil {
		return RouteView{}, err
	}

	return view, nil
}
