package channel

import (
	"net/http"
	"time"
)

// ConsumerConfig — параметры подключения к каналу уведомлений.
type ConsumerConfig struct {
	URL               string        // ws://host/ws/admin
	Token             string        // bearer-токен после логина; пустой — без авторизации
	ReconnectInterval time.Duration // фиксированная пауза между попытками
	ProcessTimeout    time.Duration // таймаут обработки одного кадра
}

// dialHeader — заголовки рукопожатия (авторизация, если есть токен).
func (c *ConsumerConfig) dialHeader() http.Header {
	if c.Token == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.Token)
	return h
}
