package domain

import (
	"errors"
	"fmt"
)

// Status — закрытое перечисление статусов заказа.
// Жизненный цикл: pending → accepted → preparing → ready → delivered,
// cancelled достижим только из pending.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// ErrInvalidTransition — попытка перевести заказ в недопустимый статус.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrUnknownStatus — строка не является статусом заказа.
var ErrUnknownStatus = errors.New("unknown order status")

// transitions — явная таблица допустимых переходов.
// Переходы вне таблицы отклоняются, а не «не предлагаются в UI».
var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseStatus — разбор строки со стороны канала/REST.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// Valid — статус входит в перечисление.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal — из статуса нет ни одного перехода.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0 && s.Valid()
}

// CanTransitionTo — допустим ли переход s → next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Next — единственное «прямое» действие для статуса
// (accept/cancel для pending обрабатываются отдельно).
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusAccepted, true
	case StatusAccepted:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// Filter — категория выборки для списка заказов.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	// FilterActive — заказы в работе: accepted, preparing, ready.
	FilterActive Filter = "active"
)

// ParseFilter — разбор фильтра из query; пустая строка → all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterActive:
		return FilterActive, nil
	default:
		return "", fmt.Errorf("unknown filter: %q", s)
	}
}

// Match — попадает ли статус в категорию фильтра.
func (f Filter) Match(s Status) bool {
	switch f {
	case FilterPending:
		return s == StatusPending
	case FilterActive:
		return s == StatusAccepted || s == StatusPreparing || s == StatusReady
	default:
		return true
	}
}
