package channel

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gunvolt24/resto_admin/pkg/metrics"
	"github.com/Gunvolt24/resto_admin/pkg/validate"
)

// handleFrame обрабатывает один кадр. Любой исход оставляет соединение живым:
// невалидный кадр и временная ошибка одинаково отбрасываются (канал не
// является источником истины, состояние догонит следующая загрузка).
func (c *Consumer) handleFrame(ctx context.Context, raw []byte) {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleFrame(ctxTimeout, raw)
	cancel()

	switch {
	case err == nil:
		metrics.ChannelEventsProcessed.WithLabelValues(frameType(raw)).Inc()
	case errors.Is(err, validate.ErrInvalidEvent):
		metrics.ChannelEventsFailed.WithLabelValues("invalid").Inc()
		c.log.Warnf(ctx, "invalid frame: %v (dropped)", err)
	default:
		metrics.ChannelEventsFailed.WithLabelValues("error").Inc()
		c.log.Warnf(ctx, "frame processing failed: %v (dropped)", err)
	}
}

// frameType — тип события для метрики; кадр уже успешно обработан,
// поэтому разбор конверта здесь не может не удаться.
func frameType(raw []byte) string {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Type == "" {
		return "unknown"
	}
	return env.Type
}

// waitReconnect ждёт фиксированный интервал или останавливается по контексту.
func (c *Consumer) waitReconnect(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.reconnectInterval):
		return true
	}
}

// track регистрирует активное соединение; false — уже был вызван Close.
func (c *Consumer) track(wsc conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.active = wsc
	return true
}

// untrack снимает регистрацию и закрывает соединение.
func (c *Consumer) untrack(wsc conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == wsc {
		c.active = nil
	}
	_ = wsc.Close()
}

func (c *Consumer) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
