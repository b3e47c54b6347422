package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/studio-service/internal/service/bookings"
	"github.com/m04kA/studio-service/internal/service/bookings/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeService struct {
	err error
}

func (f fakeService) Cancel(_ context.Context, number string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{BookingNumber: number, Status: "cancelled"}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"already completed", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingNumber}/cancel", NewHandler(fakeService{err: tt.err}, logger.NewNop()).Handle)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/bookings/BK20250314ABC123/cancel", nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
