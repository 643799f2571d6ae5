package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/resto_admin/config"
	"github.com/Gunvolt24/resto_admin/internal/alert"
	"github.com/Gunvolt24/resto_admin/internal/backend"
	"github.com/Gunvolt24/resto_admin/internal/channel"
	"github.com/Gunvolt24/resto_admin/internal/ports"
	"github.com/Gunvolt24/resto_admin/internal/prefs"
	"github.com/Gunvolt24/resto_admin/internal/store/memory"
	rest "github.com/Gunvolt24/resto_admin/internal/transport/http"
	"github.com/Gunvolt24/resto_admin/internal/usecase"
	"github.com/Gunvolt24/resto_admin/pkg/logger"
	"github.com/Gunvolt24/resto_admin/pkg/metrics"
	"github.com/Gunvolt24/resto_admin/pkg/telemetry"
	"github.com/Gunvolt24/resto_admin/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, канал, алерты).
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Channel         ports.EventConsumer
	Alerts          *alert.Engine
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент бэкенда; логин не фатален — канал и загрузка переподхватят позже.
	client := backend.NewClient(&backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, logg)
	if cfg.Backend.Email != "" {
		if err := client.Login(ctx, cfg.Backend.Email, cfg.Backend.Password); err != nil {
			logg.Warnf(ctx, "backend login failed: %v", err)
		}
	}

	// Сборка доменного слоя.
	orderStore := memory.NewOrderStore()
	orderValidator := validate.NewOrderValidator()
	orderService := usecase.NewOrderService(client, orderStore, logg, orderValidator)

	// Начальная загрузка состояния; бэкенд может быть недоступен — не фатально.
	if err := orderService.LoadOrders(ctx); err != nil {
		logg.Warnf(ctx, "initial load failed: %v (state will catch up from the channel)", err)
	}

	// Звуковое оповещение.
	prefStore := prefs.NewFileStore(cfg.Prefs.Path)
	sound := alert.NewSpeakerSound(cfg.Alert.PlayerCmd, logg)
	alerts := alert.NewEngine(sound, prefStore, orderStore, logg, cfg.Alert.Period)

	// Канал уведомлений.
	consumer := channel.NewConsumer(&channel.ConsumerConfig{
		URL:               cfg.Channel.URL,
		Token:             client.Token(),
		ReconnectInterval: cfg.Channel.ReconnectInterval,
		ProcessTimeout:    cfg.Channel.ProcessTimeout,
	}, orderService, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(orderService, alerts, client, logg)
	router := rest.NewRouter(httpHandler, rest.RouterOptions{
		HandlerTimeout: cfg.HTTP.HandlerTimeout,
		Tracing:        cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Channel:         consumer,
		Alerts:          alerts,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "channel close error: %v", err)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает канал, алерты и HTTP-сервер; ждёт отмены контекста
// или фоновой ошибки и корректно всё останавливает.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск потребителя канала уведомлений.
	go func() {
		a.Logger.Infof(ctx, "notification channel starting")
		if err := a.Channel.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск движка оповещений.
	go func() {
		if err := a.Alerts.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка канала уведомлений.
	if err := a.Channel.Close(); err != nil {
		a.Logger.Warnf(ctx, "channel close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
