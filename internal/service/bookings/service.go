package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/studio-service/internal/domain"
	bookingRepo "github.com/m04kA/studio-service/internal/infra/storage/booking"
	"github.com/m04kA/studio-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByNumber получает бронирование по номеру
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	s.logger.Info("GetByNumber: fetching booking number=%s", number)

	booking, err := s.getBooking(ctx, "GetByNumber", number)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает страницу бронирований с фильтрацией по email и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings email=%v, status=%v, page=%d", req.Email, req.Status, req.Page)

	page := domain.NewPage(req.Page, req.PageSize)
	filter := domain.BookingsFilter{
		Email:  req.Email,
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}

	// Конвертируем статус из строки в domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	count, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: List - count: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(bookings), count)
	return models.FromDomainBookingList(bookings, count), nil
}

// Cancel отменяет бронирование клиентом
// Отменить можно только бронирование в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, number string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking number=%s", number)

	booking, err := s.getBooking(ctx, "Cancel", number)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking number=%s cannot be cancelled, status=%s", number, booking.Status)
		return nil, ErrCannotCancel
	}

	return s.setStatus(ctx, "Cancel", booking, domain.StatusCancelled)
}

// UpdateStatus меняет статус бронирования по запросу оператора
func (s *Service) UpdateStatus(ctx context.Context, number string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking number=%s, status=%s", number, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "UpdateStatus", number)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking number=%s", booking.Status, status, number)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	return s.setStatus(ctx, "UpdateStatus", booking, status)
}

func (s *Service) getBooking(ctx context.Context, op, number string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking number=%s not found", op, number)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking number=%s: %v", op, number, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// setStatus сохраняет статус и возвращает перечитанное бронирование с временными метками
func (s *Service) setStatus(ctx context.Context, op string, booking *domain.Booking, status domain.BookingStatus) (*models.BookingResponse, error) {
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: failed to update status for booking id=%d: %v", op, booking.ID, err)
		return nil, fmt.Errorf("%w: %s - update status: %v", ErrInternal, op, err)
	}

	updated, err := s.getBooking(ctx, op, booking.BookingNumber)
	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: booking number=%s is now %s", op, booking.BookingNumber, status)
	return models.FromDomainBooking(updated), nil
}
