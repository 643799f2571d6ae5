package channel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/resto_admin/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// runAsync запускает Consumer.Run в отдельной горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, c *Consumer) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func newTestConsumer(d dialer, h frameHandler) *Consumer {
	return &Consumer{
		dialer: d, handler: h, log: nopLogger{},
		url:               "ws://test/ws/admin",
		reconnectInterval: 5 * time.Millisecond,
		processTimeout:    30 * time.Millisecond,
	}
}

// stoppableClose возвращает Close-реализацию, которая один раз закрывает stop
// (Close зовётся и из Consumer.Close, и из untrack).
func stoppableClose(stop chan struct{}) func() error {
	var once sync.Once
	return func() error {
		once.Do(func() { close(stop) })
		return nil
	}
}

func waitStop(t *testing.T, errCh <-chan error) {
	t.Helper()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("want nil after Close, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Кадры уходят в обработчик по порядку; битый кадр отбрасывается,
// соединение живёт дальше (повторного dial нет).
func TestRun_DeliversFramesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockdialer(ctrl)
	h := NewMockframeHandler(ctrl)
	wsc := NewMockconn(ctrl)

	stop := make(chan struct{})
	done := make(chan struct{})

	d.EXPECT().DialContext(gomock.Any(), "ws://test/ws/admin").Return(wsc, nil)
	gomock.InOrder(
		wsc.EXPECT().ReadMessage().Return(1, []byte(`{"type":"new_order"}`), nil),
		wsc.EXPECT().ReadMessage().Return(1, []byte("not json"), nil),
		wsc.EXPECT().ReadMessage().Return(1, []byte(`{"type":"order_status_change"}`), nil),
		wsc.EXPECT().ReadMessage().DoAndReturn(func() (int, []byte, error) {
			<-stop
			return 0, nil, errors.New("use of closed connection")
		}),
	)
	gomock.InOrder(
		h.EXPECT().HandleFrame(gomock.Any(), []byte(`{"type":"new_order"}`)).Return(nil),
		h.EXPECT().HandleFrame(gomock.Any(), []byte("not json")).Return(validate.ErrInvalidEvent),
		h.EXPECT().HandleFrame(gomock.Any(), []byte(`{"type":"order_status_change"}`)).
			DoAndReturn(func(context.Context, []byte) error {
				close(done)
				return nil
			}),
	)
	wsc.EXPECT().Close().DoAndReturn(stoppableClose(stop)).AnyTimes()

	c := newTestConsumer(d, h)
	errCh := runAsync(context.Background(), c)

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for frames")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	waitStop(t, errCh)
}

// Неудачный dial повторяется с фиксированным интервалом, пока не получится.
func TestRun_DialFailure_RetriesForever(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockdialer(ctrl)
	h := NewMockframeHandler(ctrl)
	wsc := NewMockconn(ctrl)

	stop := make(chan struct{})
	connected := make(chan struct{})

	gomock.InOrder(
		d.EXPECT().DialContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("refused")),
		d.EXPECT().DialContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("refused")),
		d.EXPECT().DialContext(gomock.Any(), gomock.Any()).Return(wsc, nil),
	)
	wsc.EXPECT().ReadMessage().DoAndReturn(func() (int, []byte, error) {
		close(connected)
		<-stop
		return 0, nil, errors.New("use of closed connection")
	})
	wsc.EXPECT().Close().DoAndReturn(stoppableClose(stop)).AnyTimes()

	c := newTestConsumer(d, h)
	errCh := runAsync(context.Background(), c)

	select {
	case <-connected:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for reconnect to succeed")
	}

	_ = c.Close()
	waitStop(t, errCh)
}

// Обрыв соединения лечится новым dial после паузы.
func TestRun_ConnectionLost_Redials(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockdialer(ctrl)
	h := NewMockframeHandler(ctrl)
	first := NewMockconn(ctrl)
	second := NewMockconn(ctrl)

	stop := make(chan struct{})
	reconnected := make(chan struct{})

	gomock.InOrder(
		d.EXPECT().DialContext(gomock.Any(), gomock.Any()).Return(first, nil),
		d.EXPECT().DialContext(gomock.Any(), gomock.Any()).Return(second, nil),
	)
	first.EXPECT().ReadMessage().Return(0, nil, errors.New("unexpected EOF"))
	first.EXPECT().Close().Return(nil)
	second.EXPECT().ReadMessage().DoAndReturn(func() (int, []byte, error) {
		close(reconnected)
		<-stop
		return 0, nil, errors.New("use of closed connection")
	})
	second.EXPECT().Close().DoAndReturn(stoppableClose(stop)).AnyTimes()

	c := newTestConsumer(d, h)
	errCh := runAsync(context.Background(), c)

	select {
	case <-reconnected:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for redial")
	}

	_ = c.Close()
	waitStop(t, errCh)
}

// Отмена контекста во время паузы между попытками — корректный выход.
func TestRun_CtxCancelDuringRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockdialer(ctrl)
	h := NewMockframeHandler(ctrl)

	d.EXPECT().DialContext(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("refused")).AnyTimes()

	c := newTestConsumer(d, h)
	c.reconnectInterval = time.Hour // пауза дольше таймаута — выходим по контексту

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := c.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// Close идемпотентен и безопасен без запущенного Run.
func TestClose_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := newTestConsumer(NewMockdialer(ctrl), NewMockframeHandler(ctrl))

	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
