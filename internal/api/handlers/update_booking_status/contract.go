package update_booking_status

import (
	"context"

	"github.com/m04kA/studio-service/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, number string, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
