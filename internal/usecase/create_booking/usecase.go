package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
	bookingRepo "github.com/m04kA/studio-service/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/studio-service/internal/infra/storage/bookingservice"
	"github.com/m04kA/studio-service/pkg/pgerr"
)

// maxNumberAttempts попытки сгенерировать уникальный номер бронирования
const maxNumberAttempts = 3

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, email=%s, date=%s, time=%s",
		req.ServiceID, req.CustomerEmail, req.Date, req.Time)

	// 1. Валидация входных данных
	slot, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом (в часовом поясе студии)
	now := uc.timeProvider.Now().In(uc.location)
	if isDateInPast(slot.date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is not active", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Длительность и цена по умолчанию берутся из услуги
	duration := service.DurationHours
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}
	price := service.Price

	booking := &domain.Booking{
		ServiceID:     &service.ID,
		ServiceName:   &service.Name,
		CustomerName:  req.CustomerName,
		CustomerEmail: domain.NormalizeEmail(req.CustomerEmail),
		CustomerPhone: req.CustomerPhone,
		BookingDate:   slot.date,
		BookingTime:   slot.start,
		DurationHours: duration,
		Location:      req.Location,
		Message:       req.Message,
		Status:        domain.StatusPending,
		Price:         &price,
	}

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	var result *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные бронирования на дату (строки блокируются FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, slot.date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 5.2. Проверяем пересечение [начало, начало+длительность)
		proposed := booking.IntervalOn(slot.date)
		if conflict := findConflict(proposed, slot.date, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: %s %s overlaps booking %s at %s",
				req.Date, slot.start, conflict.BookingNumber, conflict.BookingTime)
			return ErrSlotNotAvailable
		}

		// 5.3. Сохраняем с новым номером
		for attempt := 1; ; attempt++ {
			booking.BookingNumber = domain.GenerateBookingNumber(now)

			created, err := uc.bookingRepo.Create(txCtx, booking)
			switch {
			case err == nil:
				result = created
				return nil
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				uc.logger.Warn("CreateBooking: slot %s %s taken concurrently", req.Date, slot.start)
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrDuplicateNumber) && attempt < maxNumberAttempts:
				uc.logger.Warn("CreateBooking: booking number %s already used, regenerating", booking.BookingNumber)
				continue
			default:
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
			}
		}
	})

	if err != nil {
		// Повторы исчерпаны: конкурентная транзакция заняла слот
		if pgerr.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization failure after retries: %v", err)
			err = ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflicts()
		}
		return nil, err
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d number=%s", result.ID, result.BookingNumber)

	return &Response{Booking: result}, nil
}
