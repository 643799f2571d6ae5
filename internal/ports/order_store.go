package ports

import (
	"context"

	"github.com/Gunvolt24/resto_admin/internal/domain"
)

// OrderStore — in-memory состояние заказов админки.
// Требования к реализации: потокобезопасность; возврат копий сущностей;
// инвариант pending-множества: id в множестве ⇔ статус заказа pending.
type OrderStore interface {
	// Get — заказ по id; (order, true) при наличии, (nil, false) иначе.
	Get(ctx context.Context, id string) (*domain.Order, bool)

	// Set — сохранить/заменить заказ целиком.
	Set(ctx context.Context, order *domain.Order) error

	// SetStatus — сменить статус существующего заказа; estimatedTime в минутах,
	// 0 — не менять. Возвращает ErrUnknownOrder для неизвестного id.
	SetStatus(ctx context.Context, id string, status domain.Status, estimatedTime int) error

	// List — все заказы, новые первыми.
	List(ctx context.Context) []*domain.Order

	// PendingCount — мощность pending-множества.
	PendingCount() int

	// PendingIDs — снимок pending-множества.
	PendingIDs() []string

	// Changes — канал-уведомление об изменениях состояния (коалесцируется).
	Changes() <-chan struct{}

	// WarmUp — массовая загрузка при старте.
	WarmUp(ctx context.Context, orders []*domain.Order) error
}
