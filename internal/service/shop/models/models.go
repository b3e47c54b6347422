package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/studio-service/internal/domain"
)

// Request модели

// ListProductsRequest фильтры и пагинация списка товаров
type ListProductsRequest struct {
	CategorySlug *string
	Featured     *bool
	Page         int
	PageSize     int
}

// Response модели

// CategoryResponse категория товаров
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// ProductResponse товар в списке
type ProductResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Category         *int64   `json:"category"`
	CategoryName     *string  `json:"category_name"`
	Price            string   `json:"price"`
	SalePrice        *string  `json:"sale_price"`
	CurrentPrice     string   `json:"current_price"`
	IsOnSale         bool     `json:"is_on_sale"`
	ShortDescription string   `json:"short_description"`
	Image            string   `json:"image"`
	IsDigital        bool     `json:"is_digital"`
	Featured         bool     `json:"featured"`
	Features         []string `json:"features"`
}

// ProductImageResponse дополнительное изображение товара
type ProductImageResponse struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	AltText string `json:"alt_text"`
}

// ProductDetailResponse карточка товара
type ProductDetailResponse struct {
	ProductResponse
	Description string                 `json:"description"`
	Stock       int                    `json:"stock"`
	Images      []ProductImageResponse `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ProductListResponse страница товаров
type ProductListResponse struct {
	Count   int               `json:"count"`
	Results []ProductResponse `json:"results"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ProductID   *int64 `json:"product"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

// OrderResponse заказ
type OrderResponse struct {
	ID            int64               `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Status        string              `json:"status"`
	Subtotal      string              `json:"subtotal"`
	Discount      string              `json:"discount"`
	CouponCode    *string             `json:"coupon_code"`
	Total         string              `json:"total"`
	Notes         string              `json:"notes"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Методы конвертации

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FromDomainCategories конвертирует категории
func FromDomainCategories(categories []*domain.ProductCategory) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
		})
	}
	return resp
}

// FromDomainProduct конвертирует товар для списка
func FromDomainProduct(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Category:         p.CategoryID,
		CategoryName:     p.CategoryName,
		Price:            money(p.Price),
		CurrentPrice:     money(p.CurrentPrice()),
		IsOnSale:         p.IsOnSale(),
		ShortDescription: p.ShortDescription,
		Image:            p.Image,
		IsDigital:        p.IsDigital,
		Featured:         p.Featured,
		Features:         p.Features,
	}

	if p.SalePrice != nil {
		sale := money(*p.SalePrice)
		resp.SalePrice = &sale
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}

	return resp
}

// FromDomainProducts конвертирует список товаров
func FromDomainProducts(products []*domain.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, FromDomainProduct(p))
	}
	return resp
}

// FromDomainProductDetail конвертирует карточку товара
func FromDomainProductDetail(p *domain.Product) *ProductDetailResponse {
	images := make([]ProductImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageResponse{
			ID:      img.ID,
			Image:   img.Image,
			AltText: img.AltText,
		})
	}

	return &ProductDetailResponse{
		ProductResponse: FromDomainProduct(p),
		Description:     p.Description,
		Stock:           p.Stock,
		Images:          images,
		CreatedAt:       p.CreatedAt,
	}
}

// FromDomainOrder конвертирует заказ
func FromDomainOrder(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       money(item.Price),
			Quantity:    item.Quantity,
			Total:       money(item.Total()),
		})
	}

	return &OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		Subtotal:      money(o.Subtotal),
		Discount:      money(o.Discount),
		CouponCode:    o.CouponCode,
		Total:         money(o.Total),
		Notes:         o.Notes,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}
