package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ChannelFramesConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ws_frames_consumed_total",
			Help: "Number of frames read from the admin notification channel",
		},
	)
	ChannelEventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_events_processed_total",
			Help: "Number of channel events applied successfully",
		},
		[]string{"type"}, // new_order|order_status_change
	)
	ChannelEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_events_failed_total",
			Help: "Number of channel events dropped",
		},
		[]string{"reason"}, // invalid|error
	)
	ChannelReconnects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ws_reconnects_total",
			Help: "Number of reconnect attempts to the notification channel",
		},
	)
)

var (
	StoreSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_in_store",
			Help: "Number of orders currently held in the in-memory store",
		},
	)
	PendingOrders = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_orders",
			Help: "Cardinality of the pending-order set",
		},
	)
)

var (
	AlertCues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_cues_total",
			Help: "Number of audible cues emitted",
		},
		[]string{"kind"}, // cue|test
	)
	AlertFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alert_failures_total",
			Help: "Number of failed attempts to play a cue",
		},
	)
	OrderCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_commands_total",
			Help: "Staff order commands issued to the backend",
		},
		[]string{"action", "result"}, // accept|reject|advance|create, ok|rejected|error
	)
)

var registerOnce sync.Once

// MustRegister — регистрация всех метрик; повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			ChannelFramesConsumed, ChannelEventsProcessed, ChannelEventsFailed, ChannelReconnects,
			StoreSize, PendingOrders,
			AlertCues, AlertFailures, OrderCommands,
		)
	})
}
