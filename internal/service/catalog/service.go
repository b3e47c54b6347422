package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	serviceRepo "github.com/m04kA/studio-service/internal/infra/storage/bookingservice"
	"github.com/m04kA/studio-service/internal/service/catalog/models"
)

const servicesCacheKey = "booking:services"

// Service каталог услуг студии
type Service struct {
	serviceRepo ServiceRepository
	cache       Cache
	ttl         time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(serviceRepo ServiceRepository, cache Cache, ttl time.Duration, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cache:       cache,
		ttl:         ttl,
		logger:      logger,
	}
}

// ListServices возвращает активные услуги
// Список кэшируется; ошибки кэша не прерывают запрос
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	var cached []models.ServiceResponse
	found, err := s.cache.Get(ctx, servicesCacheKey, &cached)
	if err != nil {
		s.logger.Warn("ListServices: cache read failed: %v", err)
	}
	if found {
		return cached, nil
	}

	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainServices(services)
	if err := s.cache.Set(ctx, servicesCacheKey, resp, s.ttl); err != nil {
		s.logger.Warn("ListServices: cache write failed: %v", err)
	}

	s.logger.Info("ListServices: fetched %d services", len(resp))
	return resp, nil
}

// GetBySlug возвращает активную услугу по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetBySlug: service slug=%s not found", slug)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainService(service)
	return &resp, nil
}
