package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/resto_admin/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestChannelCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.ChannelFramesConsumed)
	beforeProcessed := testutil.ToFloat64(metrics.ChannelEventsProcessed.WithLabelValues("new_order"))
	beforeFailed := testutil.ToFloat64(metrics.ChannelEventsFailed.WithLabelValues("invalid"))
	beforeReconnects := testutil.ToFloat64(metrics.ChannelReconnects)

	metrics.ChannelFramesConsumed.Inc()
	metrics.ChannelEventsProcessed.WithLabelValues("new_order").Inc()
	metrics.ChannelEventsFailed.WithLabelValues("invalid").Inc()
	metrics.ChannelReconnects.Inc()

	if got := testutil.ToFloat64(metrics.ChannelFramesConsumed); got != beforeConsumed+1 {
		t.Fatalf("ChannelFramesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.ChannelEventsProcessed.WithLabelValues("new_order")); got != beforeProcessed+1 {
		t.Fatalf("ChannelEventsProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.ChannelEventsFailed.WithLabelValues("invalid")); got != beforeFailed+1 {
		t.Fatalf("ChannelEventsFailed: got=%v want=%v", got, beforeFailed+1)
	}
	if got := testutil.ToFloat64(metrics.ChannelReconnects); got != beforeReconnects+1 {
		t.Fatalf("ChannelReconnects: got=%v want=%v", got, beforeReconnects+1)
	}
}

func TestPendingOrders_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.PendingOrders)

	metrics.PendingOrders.Set(cur + 3)
	if got := testutil.ToFloat64(metrics.PendingOrders); got != cur+3 {
		t.Fatalf("PendingOrders after +3: got=%v want=%v", got, cur+3)
	}

	metrics.PendingOrders.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.PendingOrders); got != cur {
		t.Fatalf("PendingOrders restore: got=%v want=%v", got, cur)
	}
}

func TestOrderCommands_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.OrderCommands.WithLabelValues("accept", "ok"))
	errBefore := testutil.ToFloat64(metrics.OrderCommands.WithLabelValues("accept", "error"))

	metrics.OrderCommands.WithLabelValues("accept", "ok").Inc()
	metrics.OrderCommands.WithLabelValues("accept", "ok").Inc()

	if got := testutil.ToFloat64(metrics.OrderCommands.WithLabelValues("accept", "ok")); got != okBefore+2 {
		t.Fatalf("OrderCommands(accept,ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.OrderCommands.WithLabelValues("accept", "error")); got != errBefore {
		t.Fatalf("OrderCommands(accept,error): got=%v want=%v", got, errBefore)
	}
}
