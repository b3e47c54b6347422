package create_order

import "github.com/m04kA/studio-service/internal/domain"

// Item позиция корзины
type Item struct {
	ProductID int64
	Quantity  int // 0 означает 1
}

// Request модель запроса на создание заказа
type Request struct {
	CustomerName  string
	CustomerEmail string
	Items         []Item
	CouponCode    string // Опционально
	Notes         string
}

// Response модель ответа с созданным заказом
type Response struct {
	Order *domain.Order
}
