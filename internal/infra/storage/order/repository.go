package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий заказов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заказ и его позиции
// Вызывать внутри транзакции, чтобы заказ и позиции сохранились вместе
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"order_number",
			"customer_name",
			"customer_email",
			"status",
			"subtotal",
			"discount",
			"coupon_code",
			"total",
			"notes",
		).
		Values(
			order.OrderNumber,
			order.CustomerName,
			order.CustomerEmail,
			order.Status,
			order.Subtotal,
			order.Discount,
			order.CouponCode,
			order.Total,
			order.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	if len(order.Items) == 0 {
		return order, nil
	}

	itemsBuilder := psqlbuilder.Insert("order_items").
		Columns("order_id", "product_id", "product_name", "price", "quantity").
		Suffix("RETURNING id")

	for _, item := range order.Items {
		itemsBuilder = itemsBuilder.Values(order.ID, item.ProductID, item.ProductName, item.Price, item.Quantity)
	}

	query, args, err = itemsBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build items insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute items insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for i := 0; rows.Next() && i < len(order.Items); i++ {
		if err := rows.Scan(&order.Items[i].ID); err != nil {
			return nil, fmt.Errorf("%w: Create - scan item id: %v", ErrScanRow, err)
		}
		order.Items[i].OrderID = order.ID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Create - items rows error: %w", ErrScanRow, err)
	}

	return order, nil
}

// GetByNumber получает заказ с позициями по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"order_number",
		"customer_name",
		"customer_email",
		"status",
		"subtotal",
		"discount",
		"coupon_code",
		"total",
		"notes",
		"created_at",
		"updated_at",
	).
		From("orders").
		Where(squirrel.Eq{"order_number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.Order
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.Status,
		&order.Subtotal,
		&order.Discount,
		&order.CouponCode,
		&order.Total,
		&order.Notes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan order: %v", ErrScanRow, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *Repository) getItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "order_id", "product_id", "product_name", "price", "quantity").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%w: getItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
