package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет порту.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка: кадр канала битый или
// его payload не проходит доменную валидацию. Такие кадры отбрасываются,
// соединение не рвётся.
var ErrInvalidEvent = errors.New("invalid channel event")

// OrderValidator — валидация заказа, собранного из события new_order.
type OrderValidator struct{}

func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	return v.validateItems(order.Items, order.TotalAmount)
}

// validateCore — основные поля.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidEvent)
	}
	if order.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidEvent)
	}
	if order.CustomerName == "" {
		return fmt.Errorf("%w: customer_name обязателен", ErrInvalidEvent)
	}
	if !order.Status.Valid() {
		return fmt.Errorf("%w: неизвестный статус %q", ErrInvalidEvent, order.Status)
	}
	switch order.DeliveryType {
	case domain.DeliveryPickup, domain.DeliveryDelivery:
	default:
		return fmt.Errorf("%w: delivery_type должен быть pickup или delivery", ErrInvalidEvent)
	}
	if order.CreatedAt.IsZero() || order.CreatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: created_at некорректен", ErrInvalidEvent)
	}
	return nil
}

// validateItems — позиции и итоговая сумма.
func (v *OrderValidator) validateItems(items []domain.Item, total int64) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не может быть пустым", ErrInvalidEvent)
	}
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("%w: items[%d].name обязателен", ErrInvalidEvent, i)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%d].price отрицателен", ErrInvalidEvent, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity должен быть положительным", ErrInvalidEvent, i)
		}
	}
	if total < 0 {
		return fmt.Errorf("%w: total_amount отрицателен", ErrInvalidEvent)
	}
	return nil
}
