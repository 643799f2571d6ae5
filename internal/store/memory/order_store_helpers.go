package memory

import (
	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/pkg/metrics"
)

// syncPendingLocked — единственное место, где поддерживается инвариант
// pending-множества. Вызывается под mu после любой мутации заказа.
func (s *OrderStore) syncPendingLocked(id string) {
	order, ok := s.orders[id]
	if !ok {
		delete(s.pending, id)
		return
	}
	if order.Status == domain.StatusPending {
		s.pending[id] = struct{}{}
	} else {
		delete(s.pending, id)
	}
}

func (s *OrderStore) publishGaugesLocked() {
	metrics.StoreSize.Set(float64(len(s.orders)))
	metrics.PendingOrders.Set(float64(len(s.pending)))
}

// notify — неблокирующая публикация факта изменения; слушатель один,
// повторные уведомления схлопываются.
func (s *OrderStore) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
