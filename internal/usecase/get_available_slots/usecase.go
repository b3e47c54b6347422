package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
	serviceRepo "github.com/m04kA/studio-service/internal/infra/storage/bookingservice"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	settings         Settings
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Step <= 0 {
		settings.Step = domain.DefaultSlotStepMinutes * time.Minute
	}
	if settings.DefaultDuration <= 0 {
		settings.DefaultDuration = time.Duration(domain.DefaultServiceDurationHours * float64(time.Hour))
	}
	if settings.DefaultWindowStart.IsZero() || settings.DefaultWindowEnd.IsZero() {
		settings.DefaultWindowStart = domain.DefaultWindowStart
		settings.DefaultWindowEnd = domain.DefaultWindowEnd
	}
	if settings.Occupancy == "" {
		settings.Occupancy = domain.OccupancyOverlap
	}

	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		settings:         settings,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%q, service=%v", req.Date, req.ServiceID)

	// 1. Разбираем дату
	date, err := parseDate(req.Date, uc.settings.Location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем длительность услуги
	duration, err := uc.serviceDuration(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// 3. Получаем правила доступности на дату
	rules, err := uc.availabilityRepo.ListForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим слоты
	slots := buildSlots(date, duration, rules, bookings, uc.settings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s (rules=%d, bookings=%d)",
		len(slots), date.Format(domain.DateFormat), len(rules), len(bookings))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}

// serviceDuration длительность услуги; неизвестная услуга не является ошибкой
func (uc *UseCase) serviceDuration(ctx context.Context, serviceID *int64) (time.Duration, error) {
	if serviceID == nil {
		return uc.settings.DefaultDuration, nil
	}

	service, err := uc.serviceRepo.GetByID(ctx, *serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Info("GetAvailableSlots: service id=%d not found, using default duration", *serviceID)
			return uc.settings.DefaultDuration, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *serviceID, err)
		return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.Duration() <= 0 {
		return uc.settings.DefaultDuration, nil
	}
	return service.Duration(), nil
}
