package ports

import "context"

// EventConsumer — фоновый потребитель событий канала уведомлений.
// Run блокируется до отмены контекста; Close — идемпотентное закрытие соединения.
type EventConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
