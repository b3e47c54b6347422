package newsletter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	subscriberRepo "github.com/m04kA/studio-service/internal/infra/storage/subscriber"
	"github.com/m04kA/studio-service/internal/service/newsletter/models"
	"github.com/m04kA/studio-service/pkg/logger"
)

type fakeRepo struct {
	subscribers map[string]*domain.Subscriber
	nextID      int64
	createErr   error
}

func newFakeRepo(subs ...*domain.Subscriber) *fakeRepo {
	repo := &fakeRepo{subscribers: map[string]*domain.Subscriber{}, nextID: 100}
	for _, s := range subs {
		repo.subscribers[s.Email] = s
	}
	return repo
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	s, ok := f.subscribers[domain.NormalizeEmail(email)]
	if !ok {
		return nil, subscriberRepo.ErrSubscriberNotFound
	}
	return s, nil
}

func (f *fakeRepo) Create(_ context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	s.ID = f.nextID
	s.IsActive = true
	s.SubscribedAt = time.Now()
	f.subscribers[s.Email] = s
	return s, nil
}

func (f *fakeRepo) Reactivate(_ context.Context, id int64, name string) (*domain.Subscriber, error) {
	for _, s := range f.subscribers {
		if s.ID == id {
			s.IsActive = true
			s.UnsubscribedAt = nil
			if name != "" {
				s.Name = name
			}
			return s, nil
		}
	}
	return nil, subscriberRepo.ErrSubscriberNotFound
}

func (f *fakeRepo) Unsubscribe(_ context.Context, email string) error {
	s, ok := f.subscribers[email]
	if !ok || !s.IsActive {
		return subscriberRepo.ErrSubscriberNotFound
	}
	s.IsActive = false
	now := time.Now()
	s.UnsubscribedAt = &now
	return nil
}

func TestService_Subscribe_New(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, logger.NewNop())

	result, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{Email: "  Jane@Example.COM "})

	require.NoError(t, err)
	assert.True(t, result.Created)
	require.Contains(t, repo.subscribers, "jane@example.com")
}

func TestService_Subscribe_AlreadyActive(t *testing.T) {
	repo := newFakeRepo(&domain.Subscriber{ID: 1, Email: "jane@example.com", IsActive: true})
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{Email: "jane@example.com"})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestService_Subscribe_Reactivates(t *testing.T) {
	unsubscribedAt := time.Now()
	repo := newFakeRepo(&domain.Subscriber{ID: 1, Email: "jane@example.com", UnsubscribedAt: &unsubscribedAt})
	svc := NewService(repo, logger.NewNop())

	result, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{Email: "jane@example.com", Name: "Jane"})

	require.NoError(t, err)
	assert.False(t, result.Created)
	s := repo.subscribers["jane@example.com"]
	assert.True(t, s.IsActive)
	assert.Nil(t, s.UnsubscribedAt)
	assert.Equal(t, "Jane", s.Name)
}

func TestService_Subscribe_ConcurrentInsert(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = subscriberRepo.ErrAlreadyExists
	svc := NewService(repo, logger.NewNop())

	_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{Email: "jane@example.com"})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestService_Unsubscribe(t *testing.T) {
	repo := newFakeRepo(&domain.Subscriber{ID: 1, Email: "jane@example.com", IsActive: true})
	svc := NewService(repo, logger.NewNop())

	require.NoError(t, svc.Unsubscribe(context.Background(), &models.UnsubscribeRequest{Email: "JANE@example.com"}))
	assert.False(t, repo.subscribers["jane@example.com"].IsActive)

	err := svc.Unsubscribe(context.Background(), &models.UnsubscribeRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrSubscriberNotFound)
}

func TestService_Status(t *testing.T) {
	subscribedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepo(
		&domain.Subscriber{ID: 1, Email: "active@example.com", IsActive: true, SubscribedAt: subscribedAt},
		&domain.Subscriber{ID: 2, Email: "gone@example.com", SubscribedAt: subscribedAt},
	)
	svc := NewService(repo, logger.NewNop())

	active, err := svc.Status(context.Background(), "Active@Example.com")
	require.NoError(t, err)
	assert.True(t, active.Subscribed)
	require.NotNil(t, active.SubscribedAt)
	assert.Equal(t, subscribedAt, *active.SubscribedAt)

	gone, err := svc.Status(context.Background(), "gone@example.com")
	require.NoError(t, err)
	assert.False(t, gone.Subscribed)
	assert.Nil(t, gone.SubscribedAt)

	unknown, err := svc.Status(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, unknown.Subscribed)

	_, err = svc.Status(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmailRequired)
}
