package subscriber

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/pgerr"
	"github.com/m04kA/studio-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const constraintEmail = "subscribers_email_key"

// Repository репозиторий подписчиков рассылки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписчиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает подписчика по email (email нормализуется)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "email", "name", "is_active", "subscribed_at", "unsubscribed_at", "source",
	).
		From("subscribers").
		Where(squirrel.Eq{"email": domain.NormalizeEmail(email)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Subscriber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Email,
		&s.Name,
		&s.IsActive,
		&s.SubscribedAt,
		&s.UnsubscribedAt,
		&s.Source,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan subscriber: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create создает активного подписчика
func (r *Repository) Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	s.Email = domain.NormalizeEmail(s.Email)
	if s.Source == "" {
		s.Source = domain.DefaultSubscriberSource
	}

	query, args, err := psqlbuilder.Insert("subscribers").
		Columns("email", "name", "source").
		Values(s.Email, s.Name, s.Source).
		Suffix("RETURNING id, is_active, subscribed_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.IsActive, &s.SubscribedAt)
	if pgerr.IsUniqueViolation(err, constraintEmail) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Reactivate снова включает подписку, сбрасывая дату отписки
func (r *Repository) Reactivate(ctx context.Context, id int64, name string) (*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("subscribers").
		Set("is_active", true).
		Set("unsubscribed_at", nil).
		Where(squirrel.Eq{"id": id})

	// Имя обновляем, только если оно передано
	if name != "" {
		updateBuilder = updateBuilder.Set("name", name)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, email, name, is_active, subscribed_at, unsubscribed_at, source").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reactivate - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.Subscriber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Email,
		&s.Name,
		&s.IsActive,
		&s.SubscribedAt,
		&s.UnsubscribedAt,
		&s.Source,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Reactivate - execute update: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// Unsubscribe отключает активную подписку
// Если активного подписчика с таким email нет, возвращает ErrSubscriberNotFound
func (r *Repository) Unsubscribe(ctx context.Context, email string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("subscribers").
		Set("is_active", false).
		Set("unsubscribed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": domain.NormalizeEmail(email), "is_active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unsubscribe - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}
