package bookingservice

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/pkg/dbmetrics"
)

func serviceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "duration_hours", "price", "is_active", "sort_order", "created_at", "updated_at",
	})
}

func TestRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(dbmetrics.Wrap(db, nil))
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_services WHERE is_active = $1 ORDER BY sort_order ASC, name ASC")).
		WithArgs(true).
		WillReturnRows(serviceRows().
			AddRow(1, "Wedding film", "wedding", "", "4.0", "1200.00", true, 0, now, now).
			AddRow(2, "Portrait", "portrait", "", "1.5", "150.00", true, 1, now, now))

	services, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "wedding", services[0].Slug)
	assert.Equal(t, 90*time.Minute, services[1].Duration())
	assert.True(t, decimal.NewFromInt(150).Equal(services[1].Price))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(dbmetrics.Wrap(db, nil))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(serviceRows())

	_, err = repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
