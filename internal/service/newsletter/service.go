package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/studio-service/internal/domain"
	subscriberRepo "github.com/m04kA/studio-service/internal/infra/storage/subscriber"
	"github.com/m04kA/studio-service/internal/service/newsletter/models"
)

// Service управление подпиской на рассылку
type Service struct {
	subscriberRepo SubscriberRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса рассылки
func NewService(subscriberRepo SubscriberRepository, logger Logger) *Service {
	return &Service{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

// Subscribe подписывает email на рассылку
// Активная подписка: ErrAlreadySubscribed; отключенная включается снова; иначе создается новая
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscribeResult, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	// 1. Проверяем существующую подписку
	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
		s.logger.Error("Subscribe: failed to get subscriber %s: %v", email, err)
		return nil, fmt.Errorf("%w: Subscribe - get subscriber: %v", ErrInternal, err)
	}

	if existing != nil {
		if existing.IsActive {
			s.logger.Warn("Subscribe: %s is already subscribed", email)
			return nil, ErrAlreadySubscribed
		}

		// 2. Включаем отключенную подписку
		if _, err := s.subscriberRepo.Reactivate(ctx, existing.ID, req.Name); err != nil {
			s.logger.Error("Subscribe: failed to reactivate %s: %v", email, err)
			return nil, fmt.Errorf("%w: Subscribe - reactivate: %v", ErrInternal, err)
		}

		s.logger.Info("Subscribe: reactivated subscriber id=%d", existing.ID)
		return &models.SubscribeResult{Created: false}, nil
	}

	// 3. Создаем новую подписку
	created, err := s.subscriberRepo.Create(ctx, &domain.Subscriber{
		Email:  email,
		Name:   req.Name,
		Source: req.Source,
	})
	if err != nil {
		if errors.Is(err, subscriberRepo.ErrAlreadyExists) {
			s.logger.Warn("Subscribe: %s was subscribed concurrently", email)
			return nil, ErrAlreadySubscribed
		}
		s.logger.Error("Subscribe: failed to create subscriber %s: %v", email, err)
		return nil, fmt.Errorf("%w: Subscribe - create: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: created subscriber id=%d", created.ID)
	return &models.SubscribeResult{Created: true}, nil
}

// Unsubscribe отключает активную подписку
func (s *Service) Unsubscribe(ctx context.Context, req *models.UnsubscribeRequest) error {
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return ErrEmailRequired
	}

	if err := s.subscriberRepo.Unsubscribe(ctx, email); err != nil {
		if errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
			s.logger.Warn("Unsubscribe: no active subscription for %s", email)
			return ErrSubscriberNotFound
		}
		s.logger.Error("Unsubscribe: repository error for %s: %v", email, err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: %s unsubscribed", email)
	return nil
}

// Status возвращает статус подписки; дата подписки только для активных
func (s *Service) Status(ctx context.Context, email string) (*models.StatusResponse, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	subscriber, err := s.subscriberRepo.GetByEmail(ctx, email)
	if errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
		return &models.StatusResponse{Subscribed: false}, nil
	}
	if err != nil {
		s.logger.Error("Status: repository error for %s: %v", email, err)
		return nil, fmt.Errorf("%w: Status - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatusResponse{Subscribed: subscriber.IsActive}
	if subscriber.IsActive {
		subscribedAt := subscriber.SubscribedAt
		resp.SubscribedAt = &subscribedAt
	}
	return resp, nil
}
