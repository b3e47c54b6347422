package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/api/handlers"
	"github.com/m04kA/studio-service/internal/domain"
	createBooking "github.com/m04kA/studio-service/internal/usecase/create_booking"
	"github.com/m04kA/studio-service/pkg/logger"
	"github.com/m04kA/studio-service/pkg/ptr"
)

const validBody = `{
	"service": 1,
	"customer_name": "Jane Doe",
	"customer_email": "jane@example.com",
	"customer_phone": "+1 555 0100",
	"booking_date": "2025-03-14",
	"booking_time": "10:00",
	"duration_hours": "1.5"
}`

type fakeUseCase struct {
	lastReq *createBooking.Request
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{Booking: &domain.Booking{
		ID:            9,
		BookingNumber: "BK20250314ABC123",
		ServiceID:     ptr.Ptr(int64(1)),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		BookingDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		BookingTime:   "10:00",
		DurationHours: *req.DurationHours,
		Status:        domain.StatusPending,
	}}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/booking/bookings", strings.NewReader(body)))
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(NewHandler(uc, logger.NewNop()), validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decimal.RequireFromString("1.5").Equal(*uc.lastReq.DurationHours))

	var body CreateBookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, msgCreated, body.Message)
	assert.Equal(t, "BK20250314ABC123", body.Booking.BookingNumber)
	assert.Equal(t, "10:00:00", body.Booking.BookingTime)
	assert.Equal(t, "1.5", body.Booking.DurationHours)
	assert.Equal(t, "pending", body.Booking.Status)
}

func TestHandler_ValidationErrors(t *testing.T) {
	w := post(NewHandler(&fakeUseCase{}, logger.NewNop()), `{"service": 1, "customer_email": "nope", "booking_date": "14/03/2025"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body handlers.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body.Errors, "customer_name")
	assert.Contains(t, body.Errors, "customer_email")
	assert.Contains(t, body.Errors, "booking_date")
	assert.Contains(t, body.Errors, "booking_time")
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{"slot taken", createBooking.ErrSlotNotAvailable, http.StatusBadRequest, "non_field_errors"},
		{"date in past", createBooking.ErrDateInPast, http.StatusBadRequest, "booking_date"},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound, "error"},
		{"invalid input", fmt.Errorf("%w: booking_time must be HH:MM", createBooking.ErrInvalidInput), http.StatusBadRequest, "error"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), validBody)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"`+tt.key+`"`)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	w := post(NewHandler(&fakeUseCase{}, logger.NewNop()), `{"service": "one"`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}
