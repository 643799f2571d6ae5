package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — параметры локального админского HTTP-сервера.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"HTTP_ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"HTTP_WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"HTTP_READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"HTTP_IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HTTP_HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"HTTP_GRACEFUL_TIMEOUT"`
}

// Backend — ресторанный бэкенд, который мы потребляем.
type Backend struct {
	BaseURL  string        `default:"http://localhost:8000" envconfig:"BACKEND_BASE_URL"`
	Email    string        `default:"" envconfig:"BACKEND_EMAIL"`
	Password string        `default:"" envconfig:"BACKEND_PASSWORD"`
	Timeout  time.Duration `default:"10s" envconfig:"BACKEND_TIMEOUT"`
}

// Channel — админский канал уведомлений (WebSocket).
type Channel struct {
	URL string `default:"ws://localhost:8000/ws/admin" envconfig:"CHANNEL_URL"`
	// ReconnectInterval — фиксированный интервал переподключения; попытки не ограничены.
	ReconnectInterval time.Duration `default:"3s" envconfig:"CHANNEL_RECONNECT_INTERVAL"`
	ProcessTimeout    time.Duration `default:"5s" envconfig:"CHANNEL_PROCESS_TIMEOUT"`
}

// Alert — звуковое оповещение о необработанных заказах.
type Alert struct {
	Period time.Duration `default:"2s" envconfig:"ALERT_PERIOD"`
	// PlayerCmd — внешняя команда для проигрывания PCM; пусто — терминальный звонок.
	PlayerCmd string `default:"" envconfig:"ALERT_PLAYER_CMD"`
}

// Prefs — локальное долговечное хранилище настроек.
type Prefs struct {
	Path string `default:"resto_admin_prefs.json" envconfig:"PREFS_PATH"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"LOG_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"TRACING_ENABLED"`
	ServiceName string  `default:"resto-admin" envconfig:"TRACING_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"TRACING_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"TRACING_SAMPLE_RATIO"`
}

type Config struct {
	HTTP    HTTP
	Backend Backend
	Channel Channel
	Alert   Alert
	Prefs   Prefs
	Logger  Logger
	Tracing Tracing
}

// Load — конфигурация из окружения с префиксом ADMIN.
func Load() (*Config, error) {
	return LoadWithPrefix("ADMIN")
}

// LoadWithPrefix — то же с произвольным префиксом (используется тестами,
// чтобы не затирать переменные друг друга).
func LoadWithPrefix(prefix string) (*Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
