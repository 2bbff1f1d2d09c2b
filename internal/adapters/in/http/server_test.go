package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/memory"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/generated/servers"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncDispatcher delivers on the calling goroutine so a submitted shipment is
// trackable as soon as the request returns.
type syncDispatcher struct {
	handler commands.DeliverShipmentCommandHandler
}

func (d *syncDispatcher) Dispatch(ctx context.Context, s *shipment.Shipment) {
	cmd, err := commands.NewDeliverShipmentCommand(s)
	if err != nil {
		return
	}
	_ = d.handler.Handle(ctx, cmd)
}

type brokenShipmentRepository struct{}

func (brokenShipmentRepository) Add(context.Context, *shipment.Shipment) error {
	return errors.New("disk on fire")
}

func (brokenShipmentRepository) Get(context.Context, kernel.UUID) (*shipment.Shipment, error) {
	return nil, errors.New("disk on fire")
}

func (brokenShipmentRepository) List(context.Context) ([]*shipment.Shipment, error) {
	return nil, errors.New("disk on fire")
}

func (brokenShipmentRepository) Count(context.Context) (int, error) {
	return 0, errors.New("disk on fire")
}

type brokenStore struct {
	*memory.RecordStore
}

func (brokenStore) ShipmentRepository() ports.ShipmentRepository {
	return brokenShipmentRepository{}
}

func newTestServer(store ports.RecordStore) *echo.Echo {
	dispatcher := &syncDispatcher{handler: commands.NewDeliverShipmentCommandHandler(store)}
	server := httpadapter.NewServer(
		commands.NewSubmitShipmentCommandHandler(dispatcher),
		commands.NewAddCustomerCommandHandler(store),
		commands.NewAddStaffCommandHandler(store),
		queries.NewTrackShipmentQueryHandler(store),
		queries.NewListShipmentsQueryHandler(store),
		queries.NewListCustomersQueryHandler(store),
		queries.NewListStaffQueryHandler(store),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	servers.RegisterHandlers(e, server)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSubmitShipment_ThenTrack(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodPost, "/api/v1/shipments",
		`{"sender":"A","receiver":"B","address":"1 Main St","weight":"2.0","category":"Local"}`)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	submitted := decode[servers.SubmittedShipment](t, rec)
	assert.InDelta(t, 10.0, submitted.Cost, 1e-9)
	require.NotEmpty(t, submitted.Id.String())

	rec = doJSON(t, e, http.MethodGet, "/api/v1/shipments/"+submitted.Id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	tracked := decode[servers.Shipment](t, rec)
	assert.Equal(t, submitted.Id, tracked.Id)
	assert.Equal(t, "A", tracked.Sender)
	assert.Equal(t, "B", tracked.Receiver)
	assert.Equal(t, servers.Local, tracked.Category)
	assert.Equal(t, servers.Delivered, tracked.Status)
	assert.InDelta(t, 10.0, tracked.Cost, 1e-9)
}

func TestSubmitShipment_WeightAsJSONNumber(t *testing.T) {
	tests := []struct {
		name     string
		weight   string
		category string
		want     float64
	}{
		{name: "decimal", weight: `2.0`, category: "Local", want: 10},
		{name: "integer", weight: `3`, category: "International", want: 30},
		{name: "exponent", weight: `1e1`, category: "Local", want: 50},
		{name: "zero", weight: `0`, category: "Local", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(memory.NewRecordStore())

			rec := doJSON(t, e, http.MethodPost, "/api/v1/shipments",
				`{"sender":"A","receiver":"B","address":"x","weight":`+tt.weight+`,"category":"`+tt.category+`"}`)

			require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
			assert.InDelta(t, tt.want, decode[servers.SubmittedShipment](t, rec).Cost, 1e-9)
		})
	}
}

func TestSubmitShipment_NegativeZeroWeightCostsZero(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodPost, "/api/v1/shipments",
		`{"sender":"A","receiver":"B","address":"x","weight":"-0","category":"Local"}`)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"cost":0`)
	assert.NotContains(t, rec.Body.String(), `"cost":-0`)
}

func TestSubmitShipment_FormBody(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())
	form := url.Values{
		"sender":   {"A"},
		"receiver": {"B"},
		"address":  {"Far Away"},
		"weight":   {"1.5"},
		"category": {"international"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipments", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.InDelta(t, 15.0, decode[servers.SubmittedShipment](t, rec).Cost, 1e-9)
}

func TestSubmitShipment_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "non-numeric weight", body: `{"sender":"A","receiver":"B","address":"x","weight":"heavy"}`},
		{name: "negative weight", body: `{"sender":"A","receiver":"B","address":"x","weight":"-1"}`},
		{name: "empty weight", body: `{"sender":"A","receiver":"B","address":"x","weight":""}`},
		{name: "missing weight", body: `{"sender":"A","receiver":"B","address":"x"}`},
		{name: "boolean weight", body: `{"sender":"A","receiver":"B","address":"x","weight":true}`},
		{name: "negative numeric weight", body: `{"sender":"A","receiver":"B","address":"x","weight":-2.5}`},
		{name: "unknown category", body: `{"sender":"A","receiver":"B","address":"x","weight":"1","category":"Orbital"}`},
		{name: "malformed body", body: `{"sender":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewRecordStore()
			e := newTestServer(store)

			rec := doJSON(t, e, http.MethodPost, "/api/v1/shipments", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			if tt.name != "malformed body" {
				assert.Contains(t, body.Message, errs.ErrValueIsInvalid.Error())
			}

			n, err := store.ShipmentRepository().Count(t.Context())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestTrackShipment_NotFound(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	for _, id := range []string{kernel.NewUUID().String(), "not-a-uuid"} {
		rec := doJSON(t, e, http.MethodGet, "/api/v1/shipments/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestListShipments(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodGet, "/api/v1/shipments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[servers.ShipmentList](t, rec)
	assert.True(t, empty.Empty)
	assert.Empty(t, empty.Items)

	doJSON(t, e, http.MethodPost, "/api/v1/shipments", `{"sender":"A","receiver":"B","address":"x","weight":"1"}`)
	doJSON(t, e, http.MethodPost, "/api/v1/shipments", `{"sender":"C","receiver":"D","address":"y","weight":"2"}`)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/shipments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[servers.ShipmentList](t, rec)
	assert.False(t, list.Empty)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "A", list.Items[0].Sender)
	assert.Equal(t, "C", list.Items[1].Sender)
}

func TestCustomers(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodGet, "/api/v1/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[servers.CustomerList](t, rec).Empty)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/customers", `{"name":"Ann","contact":"ann@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/customers", "")
	list := decode[servers.CustomerList](t, rec)
	assert.False(t, list.Empty)
	assert.Equal(t, []servers.Customer{{Name: "Ann", Contact: "ann@example.com"}}, list.Items)
}

func TestStaff(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())

	rec := doJSON(t, e, http.MethodGet, "/api/v1/staff", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[servers.StaffList](t, rec).Empty)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/staff", `{"name":"Dora","role":"Dispatcher"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/staff", "")
	list := decode[servers.StaffList](t, rec)
	assert.Equal(t, []servers.Staff{{Name: "Dora", Role: "Dispatcher"}}, list.Items)
}

func TestListShipments_StoreFailure(t *testing.T) {
	e := newTestServer(brokenStore{RecordStore: memory.NewRecordStore()})

	rec := doJSON(t, e, http.MethodGet, "/api/v1/shipments", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to retrieve shipments", decode[servers.Error](t, rec).Message)
}

func TestRegisterSwagger_ServesOpenAPIDocument(t *testing.T) {
	e := newTestServer(memory.NewRecordStore())
	require.NoError(t, httpadapter.RegisterSwagger(e))
	// A second registration must not panic on the swag registry.
	require.NoError(t, httpadapter.RegisterSwagger(echo.New()))

	rec := doJSON(t, e, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/api/v1/shipments/{id}")
	assert.Contains(t, doc.Paths["/api/v1/shipments"], "post")
}
