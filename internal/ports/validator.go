package ports

import (
	"context"

	"github.com/Gunvolt24/resto_admin/internal/domain"
)

// OrderValidator — доменная валидация заказа, собранного из события new_order.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
