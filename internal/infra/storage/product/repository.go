package product

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

var productColumns = []string{
	"p.id",
	"p.name",
	"p.slug",
	"p.category_id",
	"c.name",
	"p.price",
	"p.sale_price",
	"p.description",
	"p.short_description",
	"p.image",
	"p.file",
	"p.is_digital",
	"p.is_active",
	"p.featured",
	"p.stock",
	"p.created_at",
	"p.updated_at",
}

// Repository репозиторий товаров магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCategories возвращает категории в порядке (sort_order, name)
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.ProductCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "description", "sort_order").
		From("product_categories").
		OrderBy("sort_order ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ProductCategory, 0)
	for rows.Next() {
		var c domain.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// List возвращает активные товары с фильтрацией, вместе с их особенностями
func (r *Repository) List(ctx context.Context, filter domain.ProductsFilter) ([]*domain.Product, error) {
	selectBuilder := applyFilter(selectProducts(), filter).
		OrderBy("p.featured DESC", "p.created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	products, err := r.queryProducts(ctx, "List", query, args)
	if err != nil {
		return nil, err
	}

	if err := r.attachFeatures(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// Count возвращает количество активных товаров под фильтром
func (r *Repository) Count(ctx context.Context, filter domain.ProductsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("COUNT(*)").
			From("products p").
			LeftJoin("product_categories c ON c.id = p.category_id"),
		filter,
	).ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetBySlug получает активный товар с особенностями и изображениями
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query, args, err := selectProducts().
		Where(squirrel.Eq{"p.slug": slug, "p.is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	products, err := r.queryProducts(ctx, "GetBySlug", query, args)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}

	product := products[0]
	if err := r.attachFeatures(ctx, products); err != nil {
		return nil, err
	}
	if err := r.attachImages(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetActiveByIDs возвращает активные товары из списка ID; неизвестные ID пропускаются
func (r *Repository) GetActiveByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Product, error) {
	result := make(map[int64]*domain.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := selectProducts().
		Where(squirrel.Eq{"p.id": ids, "p.is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByIDs - build select query: %v", ErrBuildQuery, err)
	}

	products, err := r.queryProducts(ctx, "GetActiveByIDs", query, args)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

func (r *Repository) queryProducts(ctx context.Context, op, query string, args []interface{}) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		var salePrice decimal.NullDecimal
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.CategoryID,
			&p.CategoryName,
			&p.Price,
			&salePrice,
			&p.Description,
			&p.ShortDescription,
			&p.Image,
			&p.File,
			&p.IsDigital,
			&p.IsActive,
			&p.Featured,
			&p.Stock,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		if salePrice.Valid {
			p.SalePrice = &salePrice.Decimal
		}
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time
		p.Features = []string{}
		p.Images = []domain.ProductImage{}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return products, nil
}

// attachFeatures подгружает особенности товаров одним запросом
func (r *Repository) attachFeatures(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Product, len(products))
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := psqlbuilder.Select("product_id", "feature").
		From("product_features").
		Where(squirrel.Eq{"product_id": ids}).
		OrderBy("product_id ASC", "sort_order ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachFeatures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachFeatures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var feature string
		if err := rows.Scan(&productID, &feature); err != nil {
			return fmt.Errorf("%w: attachFeatures - scan row: %v", ErrScanRow, err)
		}
		if p, ok := byID[productID]; ok {
			p.Features = append(p.Features, feature)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachFeatures - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func (r *Repository) attachImages(ctx context.Context, product *domain.Product) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "image", "alt_text", "sort_order").
		From("product_images").
		Where(squirrel.Eq{"product_id": product.ID}).
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.Image, &img.AltText, &img.SortOrder); err != nil {
			return fmt.Errorf("%w: attachImages - scan row: %v", ErrScanRow, err)
		}
		product.Images = append(product.Images, img)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachImages - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func selectProducts() squirrel.SelectBuilder {
	return psqlbuilder.Select(productColumns...).
		From("products p").
		LeftJoin("product_categories c ON c.id = p.category_id")
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.ProductsFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"p.is_active": true})
	if filter.CategorySlug != nil {
		builder = builder.Where(squirrel.Eq{"c.slug": *filter.CategorySlug})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"p.featured": *filter.Featured})
	}
	return builder
}
