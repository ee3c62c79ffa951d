package googlemaps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/ports"
	"capsule/internal/pkg/errs"
)

const directionsProvider = "google directions"

// DirectionsClient implements ports.DirectionsClient.
type DirectionsClient struct {
	client
}

func NewDirectionsClient(cfg Config) *DirectionsClient {
	return NewDirectionsClientWithHTTP(cfg, nil)
}

func NewDirectionsClientWithHTTP(cfg Config, httpc *http.Client) *DirectionsClient {
	return &DirectionsClient{client: newClient(directionsProvider, cfg, httpc)}
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		WaypointOrder *[]int `json:"waypoint_order"`
	} `json:"routes"`
}

// Optimize requests a route with optimize:true waypoints and returns the
// provider's waypoint order together with the raw response.
func (c *DirectionsClient) Optimize(
	ctx context.Context, origin kernel.Coordinate, stops []kernel.Coordinate, destination kernel.Coordinate,
) (ports.OptimizedRoute, error) {
	if len(stops) == 0 {
		return ports.OptimizedRoute{}, errs.NewValueIsRequiredError("stops")
	}
	if err := origin.Validate(); err != nil {
		return ports.OptimizedRoute{}, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	if err := destination.Validate(); err != nil {
		return ports.OptimizedRoute{}, errs.NewValueIsInvalidErrorWithCause("destination", err)
	}

	waypoints := make([]string, 0, len(stops)+1)
	waypoints = append(waypoints, "optimize:true")
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return ports.OptimizedRoute{}, errs.NewValueIsInvalidErrorWithCause("stops", err)
		}
		waypoints = append(waypoints, stop.String())
	}

	body, err := c.get(ctx, "/maps/api/directions/json", url.Values{
		"origin":      {origin.String()},
		"destination": {destination.String()},
		"waypoints":   {strings.Join(waypoints, "|")},
	})
	if err != nil {
		return ports.OptimizedRoute{}, err
	}

	var resp directionsResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return ports.OptimizedRoute{}, errs.NewMalformedResponseErrorWithCause(c.provider, "undecodable body", err)
	}
	if resp.Status != StatusOK {
		return ports.OptimizedRoute{}, errs.NewProviderRejectedError(c.provider, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Routes) == 0 {
		return ports.OptimizedRoute{}, errs.NewMalformedResponseError(c.provider, "no routes")
	}
	if resp.Routes[0].WaypointOrder == nil {
		return ports.OptimizedRoute{}, errs.NewMalformedResponseError(c.provider, "no waypoint_order")
	}

	return ports.OptimizedRoute{
		WaypointOrder: *resp.Routes[0].WaypointOrder,
		Payload:       json.RawMessage(body),
	}, nil
}
