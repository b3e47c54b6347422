package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a shop order
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// ProductCategory groups products in the shop
type ProductCategory struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	SortOrder   int
}

// Product is a shop item, digital or physical
type Product struct {
	ID               int64
	Name             string
	Slug             string
	CategoryID       *int64
	CategoryName     *string
	Price            decimal.Decimal
	SalePrice        *decimal.Decimal
	Description      string
	ShortDescription string
	Image            string
	File             string
	IsDigital        bool
	IsActive         bool
	Featured         bool
	Stock            int
	Features         []string
	Images           []ProductImage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CurrentPrice цена со скидкой, если она задана
func (p *Product) CurrentPrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// IsOnSale есть ли цена со скидкой
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil && p.SalePrice.LessThan(p.Price)
}

// ProductImage дополнительное изображение товара
type ProductImage struct {
	ID        int64
	Image     string
	AltText   string
	SortOrder int
}

// ProductsFilter фильтр списка товаров
type ProductsFilter struct {
	CategorySlug *string
	Featured     *bool
	Limit        uint64
	Offset       uint64
}

// Order is a customer's shop purchase
type Order struct {
	ID            int64
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Status        OrderStatus
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	CouponCode    *string
	Total         decimal.Decimal
	Notes         string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem позиция заказа; название и цена фиксируются на момент покупки
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   *int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// Total стоимость позиции
func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsSubtotal сумма позиций заказа
func (o *Order) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}
