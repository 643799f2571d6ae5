package config_test

import (
	"testing"
	"time"

	cfg "github.com/Gunvolt24/resto_admin/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	c, err := cfg.LoadWithPrefix("ADMIN_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Backend
	if c.Backend.BaseURL != "http://localhost:8000" {
		t.Fatalf("Backend.BaseURL: got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout != 10*time.Second {
		t.Fatalf("Backend.Timeout: want 10s, got %v", c.Backend.Timeout)
	}

	// Channel
	if c.Channel.URL != "ws://localhost:8000/ws/admin" {
		t.Fatalf("Channel.URL: got %q", c.Channel.URL)
	}
	if c.Channel.ReconnectInterval != 3*time.Second {
		t.Fatalf("Channel.ReconnectInterval: want 3s, got %v", c.Channel.ReconnectInterval)
	}
	if c.Channel.ProcessTimeout != 5*time.Second {
		t.Fatalf("Channel.ProcessTimeout: want 5s, got %v", c.Channel.ProcessTimeout)
	}

	// Alert
	if c.Alert.Period != 2*time.Second {
		t.Fatalf("Alert.Period: want 2s, got %v", c.Alert.Period)
	}
	if c.Alert.PlayerCmd != "" {
		t.Fatalf("Alert.PlayerCmd: want empty default, got %q", c.Alert.PlayerCmd)
	}

	// Prefs
	if c.Prefs.Path != "resto_admin_prefs.json" {
		t.Fatalf("Prefs.Path: got %q", c.Prefs.Path)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false")
	}
	if c.Tracing.ServiceName != "resto-admin" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}
}

// TestLoadWithPrefix_Overrides — переменные окружения перекрывают дефолты.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	t.Setenv("ADMIN_TEST_OVR_HTTP_ADDR", ":9090")
	t.Setenv("ADMIN_TEST_OVR_CHANNEL_URL", "ws://backend:8000/ws/admin")
	t.Setenv("ADMIN_TEST_OVR_CHANNEL_RECONNECT_INTERVAL", "500ms")
	t.Setenv("ADMIN_TEST_OVR_ALERT_PERIOD", "1s")
	t.Setenv("ADMIN_TEST_OVR_LOG_PROD", "true")

	c, err := cfg.LoadWithPrefix("ADMIN_TEST_OVR")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9090" {
		t.Fatalf("HTTP.Addr: want :9090, got %q", c.HTTP.Addr)
	}
	if c.Channel.URL != "ws://backend:8000/ws/admin" {
		t.Fatalf("Channel.URL: got %q", c.Channel.URL)
	}
	if c.Channel.ReconnectInterval != 500*time.Millisecond {
		t.Fatalf("Channel.ReconnectInterval: want 500ms, got %v", c.Channel.ReconnectInterval)
	}
	if c.Alert.Period != time.Second {
		t.Fatalf("Alert.Period: want 1s, got %v", c.Alert.Period)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want true")
	}
}
