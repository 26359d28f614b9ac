// Package prefs — локальное хранилище настроек витрины в одном JSON-файле.
// Хранит флаг входа, отображаемое имя и идентификаторы избранных товаров.
// Файл переписывается целиком через временный файл и rename, чтобы при
// падении процесса на диске не оставалось полузаписанного состояния.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// State — полное содержимое хранилища настроек.
type State struct {
	IsLoggedIn bool    `json:"isLoggedIn"`
	UserName   string  `json:"userName"`
	Favorites  []int64 `json:"user_favorites"`
}

// Store — файловое хранилище настроек. Безопасно для конкурентного
// использования.
type Store struct {
	mu     sync.Mutex
	path   string
	state  State
	logger *log.Entry
}

// Open читает состояние из файла по указанному пути. Отсутствующий файл
// не является ошибкой: хранилище стартует с пустого состояния.
func Open(path string) (*Store, error) {
	store := &Store{
		path:   path,
		logger: log.WithField("component", "prefs-store"),
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read prefs file: %w", err)
	}

	if err := json.Unmarshal(payload, &store.state); err != nil {
		return nil, fmt.Errorf("parse prefs file %s: %w", path, err)
	}
	return store, nil
}

// Snapshot возвращает копию текущего состояния.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

// SetLogin записывает флаг входа и имя пользователя.
func (s *Store) SetLogin(loggedIn bool, userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoggedIn = loggedIn
	s.state.UserName = userName
	return s.persistLocked()
}

// SetFavorites целиком заменяет список избранного.
func (s *Store) SetFavorites(favorites []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Favorites = append([]int64(nil), favorites...)
	return s.persistLocked()
}

// Clear сбрасывает все настройки и переписывает файл пустым состоянием.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	return s.persistLocked()
}

func (s *Store) copyStateLocked() State {
	state := s.state
	state.Favorites = append([]int64(nil), s.state.Favorites...)
	return state
}

// persistLocked переписывает файл атомарно: запись во временный файл
// рядом с целевым и rename поверх.
func (s *Store) persistLocked() error {
	payload, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp prefs file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp prefs file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp prefs file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace prefs file: %w", err)
	}

	s.logger.WithField("path", s.path).Debug("prefs persisted")
	return nil
}
