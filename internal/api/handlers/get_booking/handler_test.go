package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/internal/service/bookings"
	"github.com/m04kA/studio-service/internal/service/bookings/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetByNumber(_ context.Context, number string) (*models.BookingResponse, error) {
	if number != "BK20250314ABC123" {
		return nil, bookings.ErrBookingNotFound
	}
	return &models.BookingResponse{ID: 1, BookingNumber: number, Status: "pending"}, nil
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingNumber}", NewHandler(fakeService{}, logger.NewNop()).Handle)
	return r
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/BK20250314ABC123", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booking_number":"BK20250314ABC123"`)

	w = httptest.NewRecorder()
	newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/BK-missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Booking not found"}`, w.Body.String())
}
