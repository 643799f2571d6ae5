package ports

import "context"

// AlertSound — способность издать звуковой сигнал.
// Реализация может быть угодно шумной; тестовый двойник просто записывает вызовы.
type AlertSound interface {
	// PlayCue — периодический сигнал «есть необработанные заказы».
	PlayCue(ctx context.Context) error

	// PlayTest — подтверждающий сигнал при включении звука пользователем.
	PlayTest(ctx context.Context) error
}

// PrefStore — долговечное локальное хранилище пользовательских настроек.
// Значения хранятся строками («true»/«false» для булевых флагов).
type PrefStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
