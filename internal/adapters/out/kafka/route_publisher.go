// Package kafka publishes route events.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"capsule/internal/core/domain/model/route"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RoutePublisher writes one route.created message per committed route,
// keyed by route id so that events of a route stay in one partition.
type RoutePublisher struct {
	w     messageWriter
	topic string
}

func NewRoutePublisher(brokers []string, topic string) *RoutePublisher {
	return newRoutePublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topic)
}

func newRoutePublisherWithWriter(w messageWriter, topic string) *RoutePublisher {
	return &RoutePublisher{w: w, topic: topic}
}

type routeCreatedEvent struct {
	RouteID   string           `json:"route_id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Stops     []routeStopEvent `json:"stops"`
}

type routeStopEvent struct {
	Sequence  int     `json:"sequence"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p *RoutePublisher) PublishRouteCreated(ctx context.Context, created *route.Route) error {
	if err := created.Validate(); err != nil {
		return err
	}

	stops := created.Stops()
	event := routeCreatedEvent{
		RouteID:   created.ID().String(),
		Name:      created.Name(),
		CreatedAt: created.CreatedAt(),
		Stops:     make([]routeStopEvent, 0, len(stops)),
	}
	for _, s := range stops {
		event.Stops = append(event.Stops, routeStopEvent{
			Sequence:  s.Sequence(),
			Address:   s.Waypoint().Address(),
			Latitude:  s.Waypoint().Coordinate().Latitude(),
			Longitude: s.Waypoint().Coordinate().Longitude(),
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode route.created")
	}

	if err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.RouteID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("route.created")},
		},
	}); err != nil {
		return errors.Wrap(err, "kafka publish")
	}

	return nil
}

// Close flushes pending writes.
func (p *RoutePublisher) Close() error {
	if c, ok := p.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// NopRoutePublisher is used when no broker is configured.
type NopRoutePublisher struct{}

func (NopRoutePublisher) PublishRouteCreated(context.Context, *route.Route) error {
	return nil
}
