package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinebooking/internal/domain"
	"cinebooking/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) PlaceBooking(ctx context.Context, user domain.User, booking domain.BookingRequest) (*domain.TicketRecord, error) {
	args := m.Called(ctx, user, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketRecord), args.Error(1)
}

func (m *MockBookingUseCase) GetOrderByID(ctx context.Context, orderID string) (*domain.TicketRecord, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketRecord), args.Error(1)
}

func (m *MockBookingUseCase) GetBookingByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

func placeRequestBody(t *testing.T) []byte {
	t.Helper()
	req := placeBookingRequest{
		User: domain.User{
			Name:     "Ann",
			LastName: "Lee",
			Email:    "ann@x.com",
			CreditCard: domain.CreditCard{
				Number:   "4242424242424242",
				CVC:      "123",
				ExpMonth: 12,
				ExpYear:  2030,
			},
		},
		Booking: domain.BookingRequest{
			City:        "CDMX",
			Cinema:      "Plaza Central",
			CinemaRoom:  "Room 1",
			Movie:       domain.Movie{Title: "Dune", Format: "IMAX"},
			Schedule:    "2024-05-01T19:00",
			Seats:       []string{"A1", "A2"},
			TotalAmount: 250,
		},
	}
	body, err := json.Marshal(req)
	assert.NoError(t, err)
	return body
}

func TestBookingHandler_place(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/booking", bytes.NewReader(placeRequestBody(t)))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := &domain.TicketRecord{
		ID:          1,
		OrderID:     "ch_123",
		Description: "Ticket(s) for movie Dune",
		City:        "CDMX",
		UserType:    domain.UserTypeNormal,
		TotalAmount: 250,
		CinemaName:  "Plaza Central",
		CinemaRoom:  "Room 1",
		Seats:       []string{"A1", "A2"},
		MovieTitle:  "Dune",
		MovieFormat: "IMAX",
		Schedule:    "2024-05-01T19:00",
	}

	mockService.On("PlaceBooking", c.Request.Context(), mock.Anything, mock.Anything).Return(ticket, nil)

	handler.place(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ticketResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ch_123", response.OrderID)
	assert.Equal(t, "normal", response.UserType)
	assert.Equal(t, []string{"A1", "A2"}, response.Cinema.Seats)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_place_validationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/booking", bytes.NewReader(placeRequestBody(t)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PlaceBooking", c.Request.Context(), mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Schema: "booking", Field: "totalAmount", Reason: "must be greater than 0"})

	handler.place(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_place_declined(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/booking", bytes.NewReader(placeRequestBody(t)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PlaceBooking", c.Request.Context(), mock.Anything, mock.Anything).
		Return(nil, &domain.PaymentDeclinedError{Code: "card_declined", Message: "declined"})

	handler.place(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestBookingHandler_place_chargedNotRecorded(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/booking", bytes.NewReader(placeRequestBody(t)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("PlaceBooking", c.Request.Context(), mock.Anything, mock.Anything).
		Return(nil, &domain.ChargedNotRecordedError{ChargeID: "ch_55", Step: "booking record", User: "ann@x.com"})

	handler.place(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ch_55", response["chargeId"])
}

func TestBookingHandler_verify(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "orderId", Value: "ch_123"}}
	c.Request = httptest.NewRequest("GET", "/booking/verify/ch_123", nil)

	mockService.On("GetOrderByID", c.Request.Context(), "ch_123").
		Return(&domain.TicketRecord{ID: 1, OrderID: "ch_123", MovieTitle: "Dune"}, nil)

	handler.verify(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ticketResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ch_123", response.OrderID)
}

func TestBookingHandler_verify_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "orderId", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/booking/verify/missing", nil)

	mockService.On("GetOrderByID", c.Request.Context(), "missing").Return(nil, repository.ErrNotFound)

	handler.verify(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
