package subscriber

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_GetByEmail_Normalizes(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM subscribers WHERE email = $1")).
		WithArgs("jane@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_active", "subscribed_at", "unsubscribed_at", "source"}).
			AddRow(1, "jane@example.com", "Jane", true, now, nil, "website"))

	s, err := repo.GetByEmail(context.Background(), "  Jane@Example.COM ")

	require.NoError(t, err)
	assert.True(t, s.IsActive)
	assert.Nil(t, s.UnsubscribedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM subscribers").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_active", "subscribed_at", "unsubscribed_at", "source"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrSubscriberNotFound)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subscribers (email,name,source) VALUES ($1,$2,$3) RETURNING id, is_active, subscribed_at")).
		WithArgs("jane@example.com", "Jane", domain.DefaultSubscriberSource).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "subscribed_at"}).AddRow(3, true, now))

	s, err := repo.Create(context.Background(), &domain.Subscriber{Email: "Jane@example.com", Name: "Jane"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "jane@example.com", s.Email)
}

func TestRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO subscribers").
		WillReturnError(&pq.Error{Code: "23505", Constraint: constraintEmail})

	_, err := repo.Create(context.Background(), &domain.Subscriber{Email: "jane@example.com"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRepository_Reactivate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE subscribers SET is_active = $1, unsubscribed_at = $2 WHERE id = $3 RETURNING")).
		WithArgs(true, nil, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_active", "subscribed_at", "unsubscribed_at", "source"}).
			AddRow(3, "jane@example.com", "Jane", true, now, nil, "website"))

	s, err := repo.Reactivate(context.Background(), 3, "")

	require.NoError(t, err)
	assert.True(t, s.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Unsubscribe(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE subscribers SET is_active = $1, unsubscribed_at = NOW() WHERE email = $2 AND is_active = $3")).
		WithArgs(false, "jane@example.com", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Unsubscribe(context.Background(), "jane@example.com"))

	mock.ExpectExec("UPDATE subscribers").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Unsubscribe(context.Background(), "gone@example.com"), ErrSubscriberNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
