package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/tracking"
	"capsule/internal/core/ports"
	"capsule/internal/generated/servers"
	"capsule/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateAddress struct{ mock.Mock }

func (m *MockCreateAddress) Handle(ctx context.Context, cmd commands.CreateAddressCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUpdateAddress struct{ mock.Mock }

func (m *MockUpdateAddress) Handle(ctx context.Context, cmd commands.UpdateAddressCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteAddress struct{ mock.Mock }

func (m *MockDeleteAddress) Handle(ctx context.Context, cmd commands.DeleteAddressCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateRoute struct{ mock.Mock }

func (m *MockCreateRoute) Handle(
	ctx context.Context, cmd commands.CreateRouteCommand,
) (commands.CreateRouteResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateRouteResult), args.Error(1)
}

type MockListAddresses struct{ mock.Mock }

func (m *MockListAddresses) Handle(ctx context.Context, q queries.ListAddressesQuery) ([]queries.AddressView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.AddressView), args.Error(1)
}

type MockGetAddress struct{ mock.Mock }

func (m *MockGetAddress) Handle(ctx context.Context, q queries.GetAddressQuery) (queries.AddressView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.AddressView), args.Error(1)
}

type MockGetRoute struct{ mock.Mock }

func (m *MockGetRoute) Handle(ctx context.Context, q queries.GetRouteQuery) (queries.RouteView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.RouteView), args.Error(1)
}

type MockValidateAddress struct{ mock.Mock }

func (m *MockValidateAddress) Handle(ctx context.Context, q queries.ValidateAddressQuery) (ports.GeocodeResult, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(ports.GeocodeResult), args.Error(1)
}

type MockRecordPosition struct{ mock.Mock }

func (m *MockRecordPosition) Handle(ctx context.Context, cmd commands.RecordPositionCommand) (*tracking.Position, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Position), args.Error(1)
}

type MockListPositions struct{ mock.Mock }

func (m *MockListPositions) Handle(ctx context.Context, q queries.ListPositionsQuery) ([]queries.PositionView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.PositionView), args.Error(1)
}

type testServer struct {
	e             *echo.Echo
	createAddress *MockCreateAddress
	updateAddress *MockUpdateAddress
	deleteAddress *MockDeleteAddress
	createRoute   *MockCreateRoute
	listAddresses *MockListAddresses
	getAddress    *MockGetAddress
	getRoute      *MockGetRoute
	validate      *MockValidateAddress
	record        *MockRecordPosition
	positions     *MockListPositions
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		createAddress: new(MockCreateAddress),
		updateAddress: new(MockUpdateAddress),
		deleteAddress: new(MockDeleteAddress),
		createRoute:   new(MockCreateRoute),
		listAddresses: new(MockListAddresses),
		getAddress:    new(MockGetAddress),
		getRoute:      new(MockGetRoute),
		validate:      new(MockValidateAddress),
		record:        new(MockRecordPosition),
		positions:     new(MockListPositions),
	}

	logger := slog.New(slog.DiscardHandler)
	ts.e = NewEcho(logger)
	server := NewServer(Handlers{
		CreateAddress:   ts.createAddress,
		UpdateAddress:   ts.updateAddress,
		DeleteAddress:   ts.deleteAddress,
		CreateRoute:     ts.createRoute,
		ListAddresses:   ts.listAddresses,
		GetAddress:      ts.getAddress,
		GetRoute:        ts.getRoute,
		ValidateAddress: ts.validate,
		RecordPosition:  ts.record,
		ListPositions:   ts.positions,
	}, logger)
	require.NoError(t, server.RegisterRoutes(ts.e))

	return ts
}

func (ts *testServer) do(method, path, body, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if user != "" {
		req.Header.Set(UserIDHeader, user)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSecuredOperations_RequireUser(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		user   string
	}{
		{"list addresses", http.MethodGet, "/api/locations/addresses", "", ""},
		{"delete address", http.MethodDelete, "/api/locations/addresses/" + kernel.NewUUID().String(), "", ""},
		{"record position", http.MethodPost, "/api/locations/update", `{"latitude": 1, "longitude": 1}`, ""},
		{"list positions", http.MethodGet, "/api/locations/list", "", ""},
		{"blank header", http.MethodGet, "/api/locations/addresses", "", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(tt.method, tt.path, tt.body, tt.user)

			require.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
			body := decode[servers.Error](t, rec)
			assert.Equal(t, http.StatusUnauthorized, body.Code)
			require.NotNil(t, body.Kind)
			assert.Equal(t, "unauthorized", *body.Kind)
			assert.Contains(t, body.Message, UserIDHeader)
			ts.listAddresses.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
			ts.record.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := newTestServer(t).do(http.MethodGet, "/api/nowhere", "", "user-1")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[servers.Error](t, rec)
	require.NotNil(t, body.Kind)
	assert.Equal(t, string(errs.KindNotFound), *body.Kind)
}

func TestCreateAddress(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	lat, lng := 41.88, -87.63

	ts.createAddress.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateAddressCommand) bool {
		return cmd.UserID() == "user-1" && cmd.PostalCode() == "60601" && cmd.IsDefault()
	})).Return(id, nil).Once()
	ts.getAddress.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetAddressQuery) bool {
		return q.AddressID().IsEqual(id) && q.UserID() == "user-1"
	})).Return(queries.AddressView{
		ID: id, AddressLine1: "1 Main St", PostalCode: "60601", City: "CHICAGO", State: "IL", Country: "US",
		Latitude: &lat, Longitude: &lng, IsDefault: true,
	}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/locations/addresses", `{
		"address_line_1": "1 main st", "city": "Chicago", "state": "IL", "country": "us",
		"postal_code": "60601", "latitude": 41.88, "longitude": -87.63, "is_default": true
	}`, "user-1")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[servers.Address](t, rec)
	assert.Equal(t, id.Bytes(), body.Id)
	assert.Equal(t, "CHICAGO", body.City)
	assert.Equal(t, "US", body.Country)
	require.NotNil(t, body.Latitude)
	assert.InDelta(t, lat, *body.Latitude, 1e-9)
	ts.createAddress.AssertExpectations(t)
	ts.getAddress.AssertExpectations(t)
}

func TestCreateAddress_MissingFieldIsNamed(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/locations/addresses",
		`{"address_line_1": "1 Main St", "city": "Chicago", "country": "US"}`, "user-1")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[servers.Error](t, rec)
	assert.Contains(t, body.Message, "postal_code")
	require.NotNil(t, body.Kind)
	assert.Equal(t, string(errs.KindValidation), *body.Kind)
	ts.createAddress.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateAddress_LatitudeOutOfRange(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/locations/addresses", `{"latitude": 91}`, "user-1")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[servers.Error](t, rec)
	assert.Contains(t, body.Message, "latitude")
	require.NotNil(t, body.Kind)
	assert.Equal(t, string(errs.KindValidation), *body.Kind)
	ts.createAddress.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateAddress_FieldTooLong(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/locations/addresses",
		`{"postal_code": "`+strings.Repeat("9", 21)+`"}`, "user-1")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[servers.Error](t, rec).Message, "postal_code")
}

func TestUpdateAddress_MissingPostalCode(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()

	rec := ts.do(http.MethodPut, "/api/locations/addresses/"+id.String(),
		`{"address_line_1": "1 Main St", "city": "Chicago", "state": "IL", "country": "US"}`, "user-1")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[servers.Error](t, rec).Message, "postal_code")
	ts.updateAddress.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateAddress_Conflict(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	ts.updateAddress.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("address")).Once()

	rec := ts.do(http.MethodPut, "/api/locations/addresses/"+id.String(), `{
		"address_line_1": "1 Main St", "city": "Chicago", "state": "IL", "country": "US", "postal_code": "60601"
	}`, "user-1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetAddress_NotFound(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	ts.getAddress.On("Handle", mock.Anything, mock.Anything).
		Return(queries.AddressView{}, errs.NewObjectNotFoundError("address", id.String())).Once()

	rec := ts.do(http.MethodGet, "/api/locations/addresses/"+id.String(), "", "user-2")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(http.MethodGet, "/api/locations/addresses/not-a-uuid", "", "user-2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/locations/addresses/00000000-0000-0000-0000-000000000000", "", "user-2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.getAddress.AssertNumberOfCalls(t, "Handle", 1)
}

func TestListAddresses(t *testing.T) {
	ts := newTestServer(t)
	ts.listAddresses.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.AddressView{{ID: kernel.NewUUID(), City: "CHICAGO"}}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/locations/addresses", "", "user-1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]servers.Address](t, rec)
	require.Len(t, body, 1)
	assert.Nil(t, body[0].Latitude)
}

func TestDeleteAddress(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	ts.deleteAddress.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteAddressCommand) bool {
		return cmd.UserID() == "user-1"
	})).Return(nil).Once()

	rec := ts.do(http.MethodDelete, "/api/locations/addresses/"+id.String(), "", "user-1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.deleteAddress.AssertExpectations(t)
}

func TestValidateAddress(t *testing.T) {
	ts := newTestServer(t)
	ts.validate.On("Handle", mock.Anything, mock.Anything).
		Return(ports.GeocodeResult{Valid: false, Status: "ZERO_RESULTS", Error: "No results found"}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/locations/validate", `{"address": "nowhere"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[servers.ValidateAddressResponse](t, rec)
	assert.False(t, body.Valid)
	require.NotNil(t, body.Error)
	assert.Equal(t, "No results found", *body.Error)
	assert.Nil(t, body.Latitude)
}

func TestValidateAddress_ZeroCoordinatesAreSent(t *testing.T) {
	ts := newTestServer(t)
	ts.validate.On("Handle", mock.Anything, mock.Anything).Return(ports.GeocodeResult{
		Valid: true, Status: "OK", City: "Null Island", CountryCode: "XX", Latitude: 0, Longitude: 0,
	}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/locations/validate", `{"address": "0,0"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["valid"])
	assert.Contains(t, raw, "latitude")
	assert.Contains(t, raw, "longitude")
	assert.InDelta(t, 0.0, raw["latitude"], 1e-9)
	assert.NotContains(t, raw, "error")
	assert.NotContains(t, raw, "address_line_2")
}

func TestValidateAddress_AddressIsRequired(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/locations/validate", `{}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[servers.Error](t, rec).Message, "address")
	ts.validate.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestValidateAddress_ProviderDown(t *testing.T) {
	ts := newTestServer(t)
	ts.validate.On("Handle", mock.Anything, mock.Anything).
		Return(ports.GeocodeResult{}, errs.NewProviderUnavailableError("google geocoding", nil)).Once()

	rec := ts.do(http.MethodPost, "/api/locations/validate", `{"address": "x"}`, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateRoute(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	payload := json.RawMessage(`{"status":"OK","routes":[{"waypoint_order":[1,0]}]}`)
	ts.createRoute.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateRouteCommand) bool {
		return len(cmd.Stops()) == 2
	})).Return(commands.CreateRouteResult{RouteID: id, OptimizedRoute: payload}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/routing/routes", `{
		"name": "Morning",
		"origin": {"address": "Depot", "latitude": 1, "longitude": 1},
		"stops": [
			{"address": "A", "latitude": 2, "longitude": 2, "delivery_time": "2026-01-02T10:00:00Z"},
			{"address": "B", "latitude": 3, "longitude": 3}
		],
		"destination": {"address": "Yard", "latitude": 4, "longitude": 4}
	}`, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[servers.CreateRouteResponse](t, rec)
	assert.Equal(t, id.Bytes(), body.RouteId)
	assert.JSONEq(t, string(payload), string(body.OptimizedRoute))
}

func TestCreateRoute_Errors(t *testing.T) {
	t.Run("missing destination", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(http.MethodPost, "/api/routing/routes", `{
			"origin": {"latitude": 1, "longitude": 1},
			"stops": [{"latitude": 2, "longitude": 2}]
		}`, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "destination")
	})

	tests := []struct {
		err    error
		status int
	}{
		{errs.NewProviderUnavailableError("google directions", nil), http.StatusServiceUnavailable},
		{errs.NewProviderRejectedError("google directions", "NOT_FOUND", ""), http.StatusUnprocessableEntity},
		{errs.NewMalformedResponseError("google directions", "no waypoint_order"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			ts := newTestServer(t)
			ts.createRoute.On("Handle", mock.Anything, mock.Anything).
				Return(commands.CreateRouteResult{}, tt.err).Once()

			rec := ts.do(http.MethodPost, "/api/routing/routes", `{
				"origin": {"latitude": 1, "longitude": 1},
				"stops": [{"latitude": 2, "longitude": 2}],
				"destination": {"latitude": 3, "longitude": 3}
			}`, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetRoute(t *testing.T) {
	ts := newTestServer(t)
	id := kernel.NewUUID()
	ts.getRoute.On("Handle", mock.Anything, mock.Anything).Return(queries.RouteView{
		ID:   id,
		Name: "Morning",
		Stops: []queries.StopView{
			{PointView: queries.PointView{Address: "C"}, Sequence: 0},
			{PointView: queries.PointView{Address: "A"}, Sequence: 1},
		},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/routing/routes/"+id.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[servers.Route](t, rec)
	require.Len(t, body.Stops, 2)
	assert.Equal(t, "C", body.Stops[0].Address)
	assert.Equal(t, 1, body.Stops[1].Sequence)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(errs.NewValueIsRequiredError("x")))
	assert.Equal(t, http.StatusNotFound, StatusOf(errs.NewObjectNotFoundError("address", "1")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(assert.AnError))
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	ts := newTestServer(t)
	ts.listAddresses.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.AddressView(nil), assert.AnError).Once()

	rec := ts.do(http.MethodGet, "/api/locations/addresses", "", "user-1")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestRecordPosition(t *testing.T) {
	ts := newTestServer(t)
	reported := time.Date(2026, 5, 4, 9, 15, 0, 0, time.UTC)
	coordinate, err := kernel.NewCoordinate(41.88, -87.63)
	require.NoError(t, err)
	position, err := tracking.NewPosition("courier-7", coordinate, reported)
	require.NoError(t, err)

	ts.record.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RecordPositionCommand) bool {
		return cmd.ProviderID() == "courier-7" && cmd.RecordedAt().Equal(reported) &&
			cmd.Coordinate().IsEqual(coordinate)
	})).Return(position, nil).Once()

	rec := ts.do(http.MethodPost, "/api/locations/update",
		`{"latitude": 41.88, "longitude": -87.63, "timestamp": "2026-05-04T09:15:00Z"}`, "courier-7")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[servers.Position](t, rec)
	assert.Equal(t, position.ID().Bytes(), body.Id)
	assert.Equal(t, "courier-7", body.ProviderId)
	assert.InDelta(t, 41.88, body.Latitude, 1e-9)
	assert.True(t, body.Timestamp.Equal(reported))
	ts.record.AssertExpectations(t)
}

func TestRecordPosition_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing latitude", `{"longitude": 1}`, "latitude"},
		{"longitude out of range", `{"latitude": 1, "longitude": 181}`, "longitude"},
		{"bad timestamp", `{"latitude": 1, "longitude": 1, "timestamp": "yesterday"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(http.MethodPost, "/api/locations/update", tt.body, "courier-7")

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			if tt.want != "" {
				assert.Contains(t, decode[servers.Error](t, rec).Message, tt.want)
			}
			ts.record.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestListPositions(t *testing.T) {
	ts := newTestServer(t)
	newest := time.Date(2026, 5, 4, 9, 16, 0, 0, time.UTC)
	ts.positions.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListPositionsQuery) bool {
		return q.ProviderID() == "courier-7" && q.Limit() == 5
	})).Return([]queries.PositionView{
		{ID: kernel.NewUUID(), ProviderID: "courier-7", Latitude: 2, Longitude: 2, RecordedAt: newest},
		{ID: kernel.NewUUID(), ProviderID: "courier-7", Latitude: 1, Longitude: 1, RecordedAt: newest.Add(-time.Minute)},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/locations/list?limit=5", "", "courier-7")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[[]servers.Position](t, rec)
	require.Len(t, body, 2)
	assert.True(t, body[0].Timestamp.Equal(newest))
	assert.InDelta(t, 1.0, body[1].Latitude, 1e-9)
	ts.positions.AssertExpectations(t)
}

func TestListPositions_DefaultLimit(t *testing.T) {
	ts := newTestServer(t)
	ts.positions.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListPositionsQuery) bool {
		return q.Limit() == queries.DefaultPositionsLimit
	})).Return([]queries.PositionView{}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/locations/list", "", "courier-7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPositions_LimitOutOfRange(t *testing.T) {
	ts := newTestServer(t)

	for _, limit := range []string{"0", "1001", "many"} {
		rec := ts.do(http.MethodGet, "/api/locations/list?limit="+limit, "", "courier-7")
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
	ts.positions.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}
