package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/resto_admin/internal/ports"
	"github.com/Gunvolt24/resto_admin/pkg/metrics"
)

// prefKeyAudioEnabled — ключ настройки звука; значения «true»/«false».
const prefKeyAudioEnabled = "alert_audio_enabled"

// Engine — звуковое оповещение о необработанных заказах.
// Правило одно: сигнал звучит ⇔ звук включён И pending-множество непусто.
// При активации — немедленный сигнал, дальше каждые period. Флаг звука
// включается только явным действием пользователя (EnableAudio) и переживает
// рестарт через PrefStore.
type Engine struct {
	sound ports.AlertSound
	prefs ports.PrefStore
	store ports.OrderStore
	log   ports.Logger

	period time.Duration

	mu      sync.Mutex
	enabled bool
	lastErr error
	wake    chan struct{}
}

// NewEngine — конструктор. Сохранённый флаг звука восстанавливается на старте Run.
func NewEngine(
	sound ports.AlertSound,
	prefs ports.PrefStore,
	store ports.OrderStore,
	log ports.Logger,
	period time.Duration,
) *Engine {
	if period <= 0 {
		period = 2 * time.Second
	}
	return &Engine{
		sound:  sound,
		prefs:  prefs,
		store:  store,
		log:    log,
		period: period,
		wake:   make(chan struct{}, 1),
	}
}

// Run — цикл оповещения. В голове цикла пересчитывается условие сигнала:
// активация — немедленный сигнал и запуск таймера, деактивация — остановка.
// Просыпается по изменениям store, по пинку Enable/Disable и по таймеру.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.restore(ctx); err != nil {
		e.log.Warnf(ctx, "restore audio pref failed: %v (audio stays off)", err)
	}
	e.log.Infof(ctx, "alert engine started period=%s audio_enabled=%v", e.period, e.Enabled())

	var timer *time.Timer
	var next <-chan time.Time
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			next = nil
		}
	}
	defer stopTimer()

	for {
		if e.shouldCue() {
			if next == nil {
				e.cue(ctx)
				timer = time.NewTimer(e.period)
				next = timer.C
			}
		} else {
			stopTimer()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.store.Changes():
			// условие пересчитается в голове цикла
		case <-e.wake:
		case <-next:
			e.cue(ctx)
			timer.Reset(e.period)
		}
	}
}

// EnableAudio — включить звук по явному действию пользователя.
// Тест-сигнал играется синхронно: неудача означает, что звука нет,
// и флаг остаётся выключенным.
func (e *Engine) EnableAudio(ctx context.Context) error {
	if err := e.sound.PlayTest(ctx); err != nil {
		metrics.AlertFailures.Inc()
		e.setLastErr(err)
		return fmt.Errorf("test tone: %w", err)
	}
	metrics.AlertCues.WithLabelValues("test").Inc()

	e.setEnabled(true)
	if err := e.prefs.Set(ctx, prefKeyAudioEnabled, "true"); err != nil {
		// звук работает в текущей сессии, потеряется только после рестарта
		e.log.Warnf(ctx, "persist audio pref failed: %v", err)
	}
	e.notify()
	e.log.Infof(ctx, "alert audio enabled")
	return nil
}

// DisableAudio — выключить звук.
func (e *Engine) DisableAudio(ctx context.Context) error {
	e.setEnabled(false)
	if err := e.prefs.Set(ctx, prefKeyAudioEnabled, "false"); err != nil {
		e.log.Warnf(ctx, "persist audio pref failed: %v", err)
	}
	e.notify()
	e.log.Infof(ctx, "alert audio disabled")
	return nil
}

// Enabled — текущее состояние флага звука.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// LastError — последняя ошибка воспроизведения (пустая строка — ошибок нет).
func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastErr == nil {
		return ""
	}
	return e.lastErr.Error()
}

func (e *Engine) setLastErr(err error) {
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()
}

func (e *Engine) setEnabled(v bool) {
	e.mu.Lock()
	e.enabled = v
	e.mu.Unlock()
}

// notify — неблокирующий пинок циклу Run (коалесцируется).
func (e *Engine) notify() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *Engine) shouldCue() bool {
	return e.Enabled() && e.store.PendingCount() > 0
}

func (e *Engine) cue(ctx context.Context) {
	if err := e.sound.PlayCue(ctx); err != nil {
		metrics.AlertFailures.Inc()
		e.setLastErr(err)
		e.log.Warnf(ctx, "cue failed: %v", err)
		return
	}
	e.setLastErr(nil)
	metrics.AlertCues.WithLabelValues("cue").Inc()
}

// restore — прочитать сохранённый флаг; отсутствие ключа = выключено.
func (e *Engine) restore(ctx context.Context) error {
	value, ok, err := e.prefs.Get(ctx, prefKeyAudioEnabled)
	if err != nil {
		return err
	}
	if ok {
		e.setEnabled(value == "true")
	}
	return nil
}
