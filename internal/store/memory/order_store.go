package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Gunvolt24/resto_admin/internal/domain"
)

// ErrUnknownOrder — операция над отсутствующим в store заказом.
var ErrUnknownOrder = errors.New("unknown order")

// OrderStore — потокобезопасное зеркало заказов бэкенда.
// Инвариант: id в pending ⇔ orders[id].Status == pending.
// Заказы не вытесняются и не удаляются: терминальные остаются для истории смены.
type OrderStore struct {
	mu      sync.RWMutex
	orders  map[string]*domain.Order
	pending map[string]struct{}

	// changes — коалесцированное уведомление подписчика (alert-петли) об изменениях.
	changes chan struct{}
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders:  make(map[string]*domain.Order),
		pending: make(map[string]struct{}),
		changes: make(chan struct{}, 1),
	}
}

// Get — копия заказа по id.
func (s *OrderStore) Get(_ context.Context, id string) (*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	return order.Clone(), true
}

// Set — сохранить/заменить заказ целиком.
func (s *OrderStore) Set(_ context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return fmt.Errorf("%w: empty order id", ErrUnknownOrder)
	}

	s.mu.Lock()
	s.orders[order.ID] = order.Clone()
	s.syncPendingLocked(order.ID)
	s.publishGaugesLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetStatus — сменить статус существующего заказа; estimatedTime в минутах, 0 — не трогать.
func (s *OrderStore) SetStatus(_ context.Context, id string, status domain.Status, estimatedTime int) error {
	s.mu.Lock()
	order, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownOrder, id)
	}
	order.Status = status
	if estimatedTime > 0 {
		order.EstimatedTime = estimatedTime
	}
	s.syncPendingLocked(id)
	s.publishGaugesLocked()
	s.mu.Unlock()

	s.notify()
	return nil
}

// List — копии всех заказов, новые первыми.
func (s *OrderStore) List(_ context.Context) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// PendingCount — мощность pending-множества.
func (s *OrderStore) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// PendingIDs — снимок pending-множества (порядок не определён).
func (s *OrderStore) PendingIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.pending))
	for id := range s.pending {
		out = append(out, id)
	}
	return out
}

// Changes — канал-уведомление; получатель обязан перечитать состояние сам.
func (s *OrderStore) Changes() <-chan struct{} {
	return s.changes
}

// WarmUp — массовая загрузка при старте (начальный REST-фетч).
func (s *OrderStore) WarmUp(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Set(ctx, order); err != nil {
			return err
		}
	}
	return nil
}
