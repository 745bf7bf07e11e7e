package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) DeleteBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type bookingEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    *domain.Booking `json:"data"`
	Error   string          `json:"error"`
}

func decodeBooking(t *testing.T, w *httptest.ResponseRecorder) bookingEnvelope {
	t.Helper()
	var resp bookingEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.CreateBookingInput{
		TrainID:        "1",
		PassengerName:  "Mona",
		PassengerEmail: "mona@example.com",
		PassengerPhone: "+20-100",
		NumberOfSeats:  2,
		TravelDate:     "2026-11-02",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Booking{
		ID:               "b-1",
		BookingReference: "BKG12345678",
		Status:           domain.BookingStatusConfirmed,
		TrainID:          "1",
		NumberOfSeats:    2,
		TotalPrice:       100,
	}

	mockService.On("CreateBooking", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBooking(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking created successfully", resp.Message)
	assert.Equal(t, "BKG12345678", resp.Data.BookingReference)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Data.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_errors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", &domain.ValidationError{Fields: []string{"passengerEmail"}}, http.StatusBadRequest, "Please provide all required fields: passengerEmail"},
		{"capacity", &domain.CapacityError{Available: 3}, http.StatusBadRequest, "Only 3 seats available"},
		{"not found", domain.ErrTrainNotFound, http.StatusNotFound, "Train not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Error creating booking"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader([]byte(`{"trainId":"1"}`)))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, tc.err)

			handler.create(c)

			assert.Equal(t, tc.code, w.Code)
			resp := decodeBooking(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestBookingHandler_create_badBody(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader([]byte(`{"numberOfSeats":"two"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := "b-1"
	c.Params = gin.Params{{Key: "id", Value: id}}
	c.Request = httptest.NewRequest("PATCH", "/api/bookings/"+id+"/cancel", nil)

	cancelled := &domain.Booking{ID: id, Status: domain.BookingStatusCancelled}
	mockService.On("CancelBooking", c.Request.Context(), id).Return(cancelled, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBooking(t, w)
	assert.Equal(t, domain.BookingStatusCancelled, resp.Data.Status)
	assert.Equal(t, "Booking cancelled successfully", resp.Message)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_twice(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "b-1"}}
	c.Request = httptest.NewRequest("PATCH", "/api/bookings/b-1/cancel", nil)

	mockService.On("CancelBooking", c.Request.Context(), "b-1").Return(nil, domain.ErrAlreadyCancelled)

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Booking is already cancelled", decodeBooking(t, w).Message)
}

func TestBookingHandler_searchByEmail(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/bookings/search?email=mona@example.com", nil)

	mockService.On("ListByEmail", c.Request.Context(), "mona@example.com").
		Return([]domain.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

	handler.searchByEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int              `json:"count"`
		Data  []domain.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
}

func TestBookingHandler_delete_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/nope", nil)

	mockService.On("DeleteBooking", c.Request.Context(), "nope").Return(nil, domain.ErrBookingNotFound)

	handler.delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBooking(t, w).Message)
}
