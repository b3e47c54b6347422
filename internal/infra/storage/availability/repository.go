package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var ruleColumns = []string{
	"id",
	"weekday",
	"specific_date",
	"start_time",
	"end_time",
	"is_available",
	"notes",
}

// Repository репозиторий правил доступности календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все правила: сначала по дням недели, затем по датам
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("booking_availability").
		OrderBy("weekday ASC NULLS LAST", "specific_date ASC NULLS LAST", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListForDate возвращает правила, которые могут относиться к дате:
// заданные на эту дату и заданные на её день недели. Порядок по времени начала.
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.AvailabilityRule, error) {
	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("booking_availability").
		Where(squirrel.Or{
			squirrel.Eq{"specific_date": date.Format(domain.DateFormat)},
			squirrel.Eq{"weekday": domain.WeekdayIndex(date)},
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListForDate", query, args)
}

// Create создает правило
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var specificDate interface{}
	if rule.SpecificDate != nil {
		specificDate = rule.SpecificDate.Format(domain.DateFormat)
	}

	query, args, err := psqlbuilder.Insert("booking_availability").
		Columns("weekday", "specific_date", "start_time", "end_time", "is_available", "notes").
		Values(rule.Weekday, specificDate, rule.StartTime, rule.EndTime, rule.IsAvailable, rule.Notes).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		var weekday sql.NullInt32

		err := rows.Scan(
			&rule.ID,
			&weekday,
			&rule.SpecificDate,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsAvailable,
			&rule.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		if weekday.Valid {
			wd := int(weekday.Int32)
			rule.Weekday = &wd
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rules, nil
}
