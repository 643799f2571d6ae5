package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/domain"
	"github.com/Gunvolt24/resto_admin/internal/ports"
	"github.com/Gunvolt24/resto_admin/pkg/metrics"
	"github.com/Gunvolt24/resto_admin/pkg/validate"
)

// ErrOrderNotFound — команда адресована заказу, которого нет в локальном состоянии.
var ErrOrderNotFound = errors.New("order not found")

// OrderService — прикладная логика админки заказов (без знаний о транспорте).
// Локальные команды: валидация перехода → REST-вызов → оптимистичное применение
// только после успешного ответа. Удалённые события применяются безусловно
// (бэкенд авторитетен, «last write wins»).
type OrderService struct {
	api       ports.OrdersAPI      // REST-команды бэкенда
	store     ports.OrderStore     // локальное состояние
	log       ports.Logger         // логгер
	validator ports.OrderValidator // валидация событий new_order
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	api ports.OrdersAPI,
	store ports.OrderStore,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		api:       api,
		store:     store,
		log:       log,
		validator: validator,
	}
}

// LoadOrders — начальная загрузка: GET /orders → WarmUp store
// (pending-множество выводится из статусов).
func (s *OrderService) LoadOrders(ctx context.Context) error {
	start := time.Now()
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.log.Errorf(ctx, "api.ListOrders failed err=%v", err)
		return fmt.Errorf("initial load: %w", err)
	}
	if err := s.store.WarmUp(ctx, orders); err != nil {
		return fmt.Errorf("warm-up store: %w", err)
	}
	s.log.Infof(ctx, "loaded %d orders (%d pending) in %s",
		len(orders), s.store.PendingCount(), time.Since(start))
	return nil
}

// HandleFrame — обработка одного кадра канала уведомлений (raw JSON).
// Шаги:
//  1. строгий разбор конверта {"type","data"};
//  2. строгий разбор payload по типу события;
//  3. new_order: доменная валидация → заказ в store в статусе pending;
//  4. order_status_change: безусловное применение статуса.
//
// Битые кадры возвращают validate.ErrInvalidEvent — вызывающий их отбрасывает.
func (s *OrderService) HandleFrame(ctx context.Context, raw []byte) error {
	env, err := validate.DecodeEnvelope(raw)
	if err != nil {
		return err
	}

	switch env.Type {
	case domain.EventNewOrder:
		return s.applyNewOrder(ctx, env.Data)
	case domain.EventOrderStatusChange:
		return s.applyStatusChange(ctx, env.Data)
	default:
		return fmt.Errorf("%w: неизвестный тип события %q", validate.ErrInvalidEvent, env.Type)
	}
}

// Orders — заказы по категории фильтра (all | pending | active).
func (s *OrderService) Orders(ctx context.Context, f domain.Filter) []*domain.Order {
	all := s.store.List(ctx)
	out := make([]*domain.Order, 0, len(all))
	for _, order := range all {
		if f.Match(order.Status) {
			out = append(out, order)
		}
	}
	return out
}

// Order — заказ по id.
func (s *OrderService) Order(ctx context.Context, id string) (*domain.Order, bool) {
	return s.store.Get(ctx, id)
}

// PendingCount — размер pending-множества (для статуса алерта).
func (s *OrderService) PendingCount() int {
	return s.store.PendingCount()
}

// Accept — принять pending-заказ; estimatedTime в минутах (0 — без оценки).
func (s *OrderService) Accept(ctx context.Context, id string, estimatedTime int) error {
	return s.command(ctx, "accept", id, domain.StatusAccepted, estimatedTime)
}

// Reject — отклонить pending-заказ.
func (s *OrderService) Reject(ctx context.Context, id string) error {
	return s.command(ctx, "reject", id, domain.StatusCancelled, 0)
}

// Advance — перевести заказ в следующий по циклу статус
// (accepted→preparing→ready→delivered).
func (s *OrderService) Advance(ctx context.Context, id string) (domain.Status, error) {
	order, ok := s.store.Get(ctx, id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	next, ok := order.Status.Next()
	if !ok {
		return "", fmt.Errorf("%w: %s terminal", domain.ErrInvalidTransition, order.Status)
	}
	if err := s.command(ctx, "advance", id, next, 0); err != nil {
		return "", err
	}
	return next, nil
}

// CreateOrder — оформить заказ от имени персонала (телефонный заказ).
// Заказ попадает в store из ответа бэкенда; событие new_order по каналу
// станет идемпотентным повтором.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created, err := s.api.CreateOrder(ctx, order)
	if err != nil {
		metrics.OrderCommands.WithLabelValues("create", "error").Inc()
		s.log.Errorf(ctx, "api.CreateOrder failed err=%v", err)
		return nil, err
	}
	if err := s.store.Set(ctx, created); err != nil {
		s.log.Warnf(ctx, "store.Set failed order=%s err=%v", created.ID, err)
	}
	metrics.OrderCommands.WithLabelValues("create", "ok").Inc()
	s.log.Infof(ctx, "order created id=%s total=%d", created.ID, created.TotalAmount)
	return created, nil
}

// command — общий путь локальной команды смены статуса.
// Состояние не меняется ни при недопустимом переходе, ни при ошибке REST.
func (s *OrderService) command(ctx context.Context, action, id string, next domain.Status, estimatedTime int) error {
	order, ok := s.store.Get(ctx, id)
	if !ok {
		metrics.OrderCommands.WithLabelValues(action, "error").Inc()
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	if !order.Status.CanTransitionTo(next) {
		metrics.OrderCommands.WithLabelValues(action, "rejected").Inc()
		s.log.Warnf(ctx, "%s rejected order=%s: %s -> %s", action, id, order.Status, next)
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.api.UpdateOrderStatus(ctx, id, next, estimatedTime); err != nil {
		metrics.OrderCommands.WithLabelValues(action, "error").Inc()
		s.log.Errorf(ctx, "%s failed order=%s err=%v (state untouched)", action, id, err)
		return err
	}

	if err := s.store.SetStatus(ctx, id, next, estimatedTime); err != nil {
		// заказ исчез между Get и SetStatus — возможна лишь гонка с самим собой,
		// store заказы не удаляет
		s.log.Warnf(ctx, "store.SetStatus failed order=%s err=%v", id, err)
	}

	metrics.OrderCommands.WithLabelValues(action, "ok").Inc()
	s.log.Infof(ctx, "%s ok order=%s status=%s", action, id, next)
	return nil
}

// applyNewOrder — событие new_order: строгий разбор, валидация, запись в store.
func (s *OrderService) applyNewOrder(ctx context.Context, raw []byte) error {
	var data domain.NewOrderData
	if err := decodeStrict(raw, &data); err != nil {
		return fmt.Errorf("%w: new_order payload: %v", validate.ErrInvalidEvent, err)
	}

	order := data.Order()
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "new_order validation failed id=%s err=%v", order.ID, err)
		return err
	}

	if err := s.store.Set(ctx, order); err != nil {
		return fmt.Errorf("store new order: %w", err)
	}
	s.log.Infof(ctx, "new order id=%s customer=%q total=%d pending=%d",
		order.ID, order.CustomerName, order.TotalAmount, s.store.PendingCount())
	return nil
}

// applyStatusChange — событие order_status_change: применяется безусловно.
// Неизвестный id — предупреждение и no-op (заказ появится следующим new_order).
func (s *OrderService) applyStatusChange(ctx context.Context, raw []byte) error {
	var data domain.StatusChangeData
	if err := decodeStrict(raw, &data); err != nil {
		return fmt.Errorf("%w: order_status_change payload: %v", validate.ErrInvalidEvent, err)
	}
	if data.OrderID == "" {
		return fmt.Errorf("%w: order_id обязателен", validate.ErrInvalidEvent)
	}
	status, err := domain.ParseStatus(data.Status)
	if err != nil {
		return fmt.Errorf("%w: %v", validate.ErrInvalidEvent, err)
	}

	if err := s.store.SetStatus(ctx, data.OrderID.String(), status, 0); err != nil {
		s.log.Warnf(ctx, "status change for unknown order id=%s status=%s (dropped)", data.OrderID, status)
		return nil
	}
	s.log.Infof(ctx, "status change id=%s status=%s pending=%d",
		data.OrderID, status, s.store.PendingCount())
	return nil
}

// decodeStrict — строгое декодирование: запрещаем неизвестные поля и хвост.
func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return errors.New("trailing data")
	}
	return nil
}
