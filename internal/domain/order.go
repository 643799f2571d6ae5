package domain

import "time"

// DeliveryType — способ получения заказа.
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// Item — позиция заказа. Цена хранится в минимальных единицах валюты (пайса).
type Item struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order — заказ в том виде, в котором его отдаёт бэкенд.
// Заказ никогда не удаляется: терминальные состояния — delivered и cancelled.
type Order struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	CustomerPhone string       `json:"customer_phone,omitempty"`
	Items         []Item       `json:"items"`
	TotalAmount   int64        `json:"total_amount"`
	Status        Status       `json:"status"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	DeliveryAddr  string       `json:"delivery_address,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	// EstimatedTime — оценка готовности в минутах; 0 — не задана.
	EstimatedTime int `json:"estimated_time,omitempty"`
}

// Clone — глубокая копия заказа (store возвращает копии, не внутренние указатели).
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cloned := *o
	if o.Items != nil {
		cloned.Items = append([]Item(nil), o.Items...)
	}
	return &cloned
}
