package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gunvolt24/resto_admin/internal/ports"
)

// Проверка соответствия порту приложения.
var _ ports.PrefStore = (*FileStore)(nil)

// FileStore — пользовательские настройки в JSON-файле (строка → строка).
// Файл перечитывается на каждый запрос: настроек единицы, читаются они редко,
// зато правка файла руками подхватывается без рестарта. Запись атомарная
// (временный файл + rename), чтобы падение не оставило полузаписанный файл.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore — конструктор; файл создаётся лениво при первом Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get — значение настройки; ok=false, если ключа нет (или файла ещё нет).
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := m[key]
	return value, ok, nil
}

// Set — записать настройку и сразу сохранить файл.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	return s.save(m)
}

func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs %s: %w", s.path, err)
	}

	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	return m, nil
}

func (s *FileStore) save(m map[string]string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir prefs dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
