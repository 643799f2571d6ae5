package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/internal/ports"
)

// DecodeEnvelope — строгий разбор конверта кадра {"type", "data"}.
// Запрещаем неизвестные поля и хвостовые данные.
func DecodeEnvelope(raw []byte) (*domain.Envelope, error) {
	var env domain.Envelope
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidEvent)
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: data обязателен", ErrInvalidEvent)
	}
	return &env, nil
}

// ValidateFrameFromJSON — полная валидация кадра канала: конверт, тип, payload.
// Возвращает конверт с уже проверенным payload.
func ValidateFrameFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.Envelope, error) {
	env, err := DecodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	switch env.Type {
	case domain.EventNewOrder:
		var data domain.NewOrderData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: new_order payload: %v", ErrInvalidEvent, err)
		}
		if err := validator.Validate(ctx, data.Order()); err != nil {
			return nil, err
		}
		return env, nil

	case domain.EventOrderStatusChange:
		var data domain.StatusChangeData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: order_status_change payload: %v", ErrInvalidEvent, err)
		}
		if data.OrderID == "" {
			return nil, fmt.Errorf("%w: order_id обязателен", ErrInvalidEvent)
		}
		if _, err := domain.ParseStatus(data.Status); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
		}
		return env, nil

	default:
		return nil, fmt.Errorf("%w: неизвестный тип события %q", ErrInvalidEvent, env.Type)
	}
}
