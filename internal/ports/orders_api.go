package ports

import (
	"context"

	"github.com/Gunvolt24/resto_admin/internal/domain"
)

// OrdersAPI — REST-операции бэкенда над заказами (мы их потребляем, не определяем).
type OrdersAPI interface {
	// ListOrders — начальная загрузка: GET /api/v1/orders.
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// UpdateOrderStatus — PUT /api/v1/orders/{id}/status.
	// estimatedTime в минутах, 0 — поле не передаётся.
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status, estimatedTime int) error

	// CreateOrder — оформление заказа персоналом: POST /api/v1/orders.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// MenuAPI — админский CRUD меню на бэкенде.
type MenuAPI interface {
	ListMenu(ctx context.Context) ([]*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}
