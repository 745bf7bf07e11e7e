package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/stations"
	"github.com/Domenick1991/railbooking/internal/service/trains"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, environment string) (*gin.Engine, *repository.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	require.NoError(t, repository.Seed(context.Background(), store))

	cfg := &config.Config{
		App:  config.AppConfig{Name: "Railway Station Management API", Environment: environment},
		HTTP: config.HTTPConfig{CORSOrigin: "*"},
	}
	router := NewRouter(cfg, Services{
		Stations: stations.NewStationService(store.Stations),
		Trains:   trains.NewTrainService(store.Trains, nil),
		Bookings: booking.NewBookingService(store, nil, nil, ""),
	})
	return router, store
}

type rawEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Stack   string          `json:"stack"`
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) (int, rawEnvelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env rawEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestRouter_BookingLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodPost, "/api/trains", map[string]interface{}{
		"trainNumber": "T100", "trainName": "Nile Runner", "origin": "Cairo", "destination": "Aswan",
		"departureTime": "07:00", "arrivalTime": "19:00", "price": 50, "totalSeats": 100,
		"days": []string{"Monday", "Friday"},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var train domain.Train
	require.NoError(t, json.Unmarshal(env.Data, &train))
	assert.Equal(t, 100, train.AvailableSeats)
	assert.Equal(t, "On Time", train.Status)

	code, env = do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": train.ID, "passengerName": "Passenger A", "passengerEmail": "a@example.com",
		"passengerPhone": "+20-100", "numberOfSeats": 10, "travelDate": "2026-11-02",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, 500.0, b.TotalPrice)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "Nile Runner", b.TrainName)

	_, env = do(t, router, http.MethodGet, "/api/trains/"+train.ID, nil)
	require.NoError(t, json.Unmarshal(env.Data, &train))
	assert.Equal(t, 90, train.AvailableSeats)

	code, env = do(t, router, http.MethodPatch, "/api/bookings/"+b.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	_, env = do(t, router, http.MethodGet, "/api/trains/"+train.ID, nil)
	require.NoError(t, json.Unmarshal(env.Data, &train))
	assert.Equal(t, 100, train.AvailableSeats)

	code, env = do(t, router, http.MethodPatch, "/api/bookings/"+b.ID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Booking is already cancelled", env.Message)
}

func TestRouter_DecimalPrice(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodPost, "/api/trains", map[string]interface{}{
		"trainNumber": "T200", "trainName": "Delta Local", "origin": "Cairo", "destination": "Tanta",
		"departureTime": "09:15", "arrivalTime": "10:45", "price": 49.99, "totalSeats": 40,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var train domain.Train
	require.NoError(t, json.Unmarshal(env.Data, &train))
	assert.Equal(t, 49.99, train.Price)

	code, env = do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": train.ID, "passengerName": "Passenger B", "passengerEmail": "b@example.com",
		"passengerPhone": "+20-200", "numberOfSeats": 3, "travelDate": "2026-11-03",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(env.Data, &b))
	assert.Equal(t, 149.97, b.TotalPrice)
}

func TestRouter_MissingEmailMutatesNothing(t *testing.T) {
	router, store := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": "1", "passengerName": "Passenger A", "passengerPhone": "+20-100",
		"numberOfSeats": 2, "travelDate": "2026-11-02",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide all required fields: passengerEmail", env.Message)

	train, err := store.Trains.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 100, train.AvailableSeats)

	bookings, err := store.Bookings.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRouter_MalformedEmailRejectedOnCreateAndUpdate(t *testing.T) {
	router, store := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": "1", "passengerName": "Passenger A", "passengerEmail": "not-an-email",
		"passengerPhone": "+20-100", "numberOfSeats": 2, "travelDate": "2026-11-02",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid fields: passengerEmail (must be an email address)", env.Message)

	train, err := store.Trains.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 100, train.AvailableSeats)

	code, env = do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": "1", "passengerName": "Passenger A", "passengerEmail": "a@example.com",
		"passengerPhone": "+20-100", "numberOfSeats": 2, "travelDate": "2026-11-02",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(env.Data, &b))

	code, env = do(t, router, http.MethodPut, "/api/bookings/"+b.ID, map[string]interface{}{"passengerEmail": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid fields: passengerEmail (must be an email address)", env.Message)
}

func TestRouter_OverCapacity(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodPost, "/api/bookings", map[string]interface{}{
		"trainId": "5", "passengerName": "P", "passengerEmail": "p@example.com",
		"passengerPhone": "1", "numberOfSeats": 51, "travelDate": "2026-11-02",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Only 50 seats available", env.Message)
}

func TestRouter_StationRoutes(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodGet, "/api/stations/search?city=cairo", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	code, env = do(t, router, http.MethodGet, "/api/stations/code/ALX", nil)
	require.Equal(t, http.StatusOK, code)
	var station domain.Station
	require.NoError(t, json.Unmarshal(env.Data, &station))
	assert.Equal(t, "Alexandria", station.City)

	code, env = do(t, router, http.MethodGet, "/api/stations/42", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Station not found", env.Message)

	code, _ = do(t, router, http.MethodGet, "/api/stations/search", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_TrainSearch(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodGet, "/api/trains/search?origin=cairo&destination=LUX&date=2026-11-02", nil)
	require.Equal(t, http.StatusOK, code)
	var list []domain.Train
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "T002", list[0].TrainNumber)
}

func TestRouter_IndexAndNotFound(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	code, env := do(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, env = do(t, router, http.MethodGet, "/api", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Railway Station Management API v1", env.Message)

	code, env = do(t, router, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", env.Message)
}

func TestRouter_PanicRecovery(t *testing.T) {
	for _, tc := range []struct {
		environment string
		wantStack   bool
	}{
		{"development", true},
		{"production", false},
	} {
		t.Run(tc.environment, func(t *testing.T) {
			router, _ := newTestRouter(t, tc.environment)
			router.GET("/explode", func(*gin.Context) { panic("kaboom") })

			code, env := do(t, router, http.MethodGet, "/explode", nil)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.False(t, env.Success)
			assert.Equal(t, "kaboom", env.Message)
			assert.Equal(t, tc.wantStack, env.Stack != "")
		})
	}
	gin.SetMode(gin.TestMode)
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newTestRouter(t, "development")

	req := httptest.NewRequest(http.MethodGet, "/api/trains", nil)
	req.Header.Set("Origin", "http://frontend.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
