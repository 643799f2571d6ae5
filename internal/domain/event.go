package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType — тип события из админского канала уведомлений.
type EventType string

const (
	EventNewOrder          EventType = "new_order"
	EventOrderStatusChange EventType = "order_status_change"
)

// Envelope — конверт кадра канала: {"type": ..., "data": ...}.
type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// FlexID — идентификатор заказа на проводе.
// Бэкенд шлёт числовые id, старые клиенты — строковые; принимаем оба варианта.
type FlexID string

func (f *FlexID) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == "" {
		*f = ""
		return nil
	}
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("order id must be a string or a number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexID) String() string { return string(f) }

// NewOrderData — payload события new_order.
type NewOrderData struct {
	ID            FlexID       `json:"id"`
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	CustomerPhone string       `json:"customer_phone,omitempty"`
	Items         []Item       `json:"items"`
	TotalAmount   int64        `json:"total_amount"`
	DeliveryType  DeliveryType `json:"delivery_type"`
	DeliveryAddr  string       `json:"delivery_address,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Order — собирает доменный заказ из payload; статус всегда pending.
func (d *NewOrderData) Order() *Order {
	return &Order{
		ID:            d.ID.String(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		Items:         append([]Item(nil), d.Items...),
		TotalAmount:   d.TotalAmount,
		Status:        StatusPending,
		DeliveryType:  d.DeliveryType,
		DeliveryAddr:  d.DeliveryAddr,
		CreatedAt:     d.CreatedAt,
	}
}

// StatusChangeData — payload события order_status_change.
type StatusChangeData struct {
	OrderID FlexID `json:"order_id"`
	Status  string `json:"status"`
}
