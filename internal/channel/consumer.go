package channel

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/ports"
	"github.com/Gunvolt24/resto_admin/pkg/metrics"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventConsumer = (*Consumer)(nil)

// conn — минимальный контракт над websocket-соединением (websocket.Conn),
// чтобы легко подменять его моками в тестах.
type conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	Close() error
}

// dialer — установка соединения с каналом уведомлений.
type dialer interface {
	DialContext(ctx context.Context, url string) (conn, error)
}

// frameHandler — зависимость на бизнес-логику,
// которая разбирает/валидирует/применяет кадр.
type frameHandler interface {
	HandleFrame(ctx context.Context, raw []byte) error
}

// Consumer — вечный цикл подключения к каналу уведомлений.
// Обрыв и неудачный dial лечатся одинаково: фиксированная пауза и новая
// попытка, без backoff и без лимита попыток. Кадры обрабатываются по одному,
// битые отбрасываются без разрыва соединения.
type Consumer struct {
	dialer  dialer
	handler frameHandler
	log     ports.Logger

	url               string
	reconnectInterval time.Duration
	processTimeout    time.Duration

	mu     sync.Mutex
	active conn
	closed bool
}

// NewConsumer — конструктор. Токен (если задан) уезжает в заголовок рукопожатия.
func NewConsumer(cfg *ConsumerConfig, handler frameHandler, log ports.Logger) *Consumer {
	ri := cfg.ReconnectInterval
	if ri <= 0 {
		ri = 3 * time.Second
	}

	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	return &Consumer{
		dialer:            newWSDialer(cfg.dialHeader()),
		handler:           handler,
		log:               log,
		url:               cfg.URL,
		reconnectInterval: ri,
		processTimeout:    pt,
	}
}

// Run — основной цикл:
// 1) dial; неудача → пауза reconnectInterval и повтор;
// 2) читаем кадры до ошибки чтения; каждый кадр — в frameHandler;
// 3) обрыв соединения → пауза reconnectInterval и новый dial.
// Выход только по отмене контекста либо после Close.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Infof(ctx, "notification channel started url=%s reconnect_interval=%s", c.url, c.reconnectInterval)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wsc, dialErr := c.dialer.DialContext(ctx, c.url)
		if dialErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warnf(ctx, "dial failed: %v (retry in %s)", dialErr, c.reconnectInterval)
			if !c.waitReconnect(ctx) {
				return ctx.Err()
			}
			metrics.ChannelReconnects.Inc()
			continue
		}

		// Close мог прийти, пока шёл dial
		if !c.track(wsc) {
			_ = wsc.Close()
			return nil
		}
		c.log.Infof(ctx, "channel connected url=%s", c.url)

		readErr := c.readLoop(ctx, wsc)
		c.untrack(wsc)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if c.isClosed() {
			return nil
		}

		c.log.Warnf(ctx, "connection lost: %v (reconnect in %s)", readErr, c.reconnectInterval)
		if !c.waitReconnect(ctx) {
			return ctx.Err()
		}
		metrics.ChannelReconnects.Inc()
	}
}

// readLoop читает кадры активного соединения до первой ошибки чтения.
func (c *Consumer) readLoop(ctx context.Context, wsc conn) error {
	for {
		_, raw, err := wsc.ReadMessage()
		if err != nil {
			return err
		}
		metrics.ChannelFramesConsumed.Inc()
		c.handleFrame(ctx, raw)
	}
}

// Close — идемпотентная остановка: закрывает активное соединение
// (разблокирует ReadMessage) и запрещает переподключения.
func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.active != nil {
		return c.active.Close()
	}
	return nil
}
