package backend

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/domain"
)

// wireOrder — заказ в формате бэкенда; id приходит числом или строкой.
type wireOrder struct {
	ID            domain.FlexID       `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone"`
	Items         []domain.Item       `json:"items"`
	TotalAmount   int64               `json:"total_amount"`
	Status        string              `json:"status"`
	DeliveryType  domain.DeliveryType `json:"delivery_type"`
	DeliveryAddr  string              `json:"delivery_address"`
	CreatedAt     time.Time           `json:"created_at"`
	EstimatedTime int                 `json:"estimated_time"`
}

func (w *wireOrder) toDomain() (*domain.Order, error) {
	status, err := domain.ParseStatus(w.Status)
	if err != nil {
		return nil, err
	}
	return &domain.Order{
		ID:            w.ID.String(),
		CustomerName:  w.CustomerName,
		CustomerEmail: w.CustomerEmail,
		CustomerPhone: w.CustomerPhone,
		Items:         append([]domain.Item(nil), w.Items...),
		TotalAmount:   w.TotalAmount,
		Status:        status,
		DeliveryType:  w.DeliveryType,
		DeliveryAddr:  w.DeliveryAddr,
		CreatedAt:     w.CreatedAt,
		EstimatedTime: w.EstimatedTime,
	}, nil
}

// ordersPayload принимает и голый массив, и обёртку {"orders": [...]}.
type ordersPayload struct {
	Orders []wireOrder
}

func (p *ordersPayload) UnmarshalJSON(raw []byte) error {
	if len(raw) > 0 && raw[0] == '[' {
		return json.Unmarshal(raw, &p.Orders)
	}
	var wrapper struct {
		Orders []wireOrder `json:"orders"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("orders payload: %w", err)
	}
	p.Orders = wrapper.Orders
	return nil
}

// menuPayload принимает и голый массив, и обёртку {"items": [...]}.
type menuPayload struct {
	Items []*domain.MenuItem
}

func (p *menuPayload) UnmarshalJSON(raw []byte) error {
	if len(raw) > 0 && raw[0] == '[' {
		return json.Unmarshal(raw, &p.Items)
	}
	var wrapper struct {
		Items []*domain.MenuItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("menu payload: %w", err)
	}
	p.Items = wrapper.Items
	return nil
}

// statusUpdateRequest — тело PUT /api/v1/orders/{id}/status.
type statusUpdateRequest struct {
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimated_time,omitempty"`
}

// createOrderRequest — тело POST /api/v1/orders (id и статус назначает бэкенд).
type createOrderRequest struct {
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Items         []domain.Item       `json:"items"`
	TotalAmount   int64               `json:"total_amount"`
	DeliveryType  domain.DeliveryType `json:"delivery_type"`
	DeliveryAddr  string              `json:"delivery_address,omitempty"`
}

func newCreateOrderRequest(order *domain.Order) createOrderRequest {
	return createOrderRequest{
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		DeliveryType:  order.DeliveryType,
		DeliveryAddr:  order.DeliveryAddr,
	}
}
