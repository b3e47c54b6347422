package coupon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий купонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает купон по коду (без учета регистра)
// Внутри транзакции строка блокируется до её завершения
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"code",
		"discount_type",
		"discount_value",
		"min_purchase",
		"valid_from",
		"valid_until",
		"is_active",
		"usage_limit",
		"used_count",
		"created_at",
	).
		From("coupons").
		Where(squirrel.Eq{"code": domain.NormalizeCouponCode(code)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var coupon domain.Coupon
	var minPurchase decimal.NullDecimal
	var usageLimit sql.NullInt32
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountType,
		&coupon.DiscountValue,
		&minPurchase,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.IsActive,
		&usageLimit,
		&coupon.UsedCount,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan coupon: %w", ErrScanRow, err)
	}

	if minPurchase.Valid {
		coupon.MinPurchase = &minPurchase.Decimal
	}
	if usageLimit.Valid {
		limit := int(usageLimit.Int32)
		coupon.UsageLimit = &limit
	}
	coupon.CreatedAt = createdAt.Time

	return &coupon, nil
}

// IncrementUsage атомарно увеличивает счетчик использований, не превышая лимит
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"usage_limit": nil},
			squirrel.Expr("used_count < usage_limit"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageLimitReached
	}

	return nil
}
