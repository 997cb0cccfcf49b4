// Пакет jsonfile — хранилище JSON-документов на диске с блокировками.
// Каждая операция читает или пишет документ целиком под именованной
// блокировкой; частичных обновлений нет.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"officials-tracker/pkg/filelock"
)

type Store struct {
	basePath string
	dataPath string
	locks    *filelock.Manager
}

func New(basePath string, lockTimeout time.Duration) (*Store, error) {
	dataPath := filepath.Join(basePath, "data")

	for _, dir := range []string{
		filepath.Join(dataPath, "positions"),
		filepath.Join(dataPath, "persons"),
		filepath.Join(dataPath, "mentions"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать каталог данных: %w", err)
		}
	}

	locks, err := filelock.NewManager(filepath.Join(basePath, ".locks"), lockTimeout)
	if err != nil {
		return nil, err
	}

	return &Store{basePath: basePath, dataPath: dataPath, locks: locks}, nil
}

func (s *Store) DataPath() string     { return s.dataPath }
func (s *Store) MentionsPath() string { return filepath.Join(s.dataPath, "mentions") }

// ReadDocument читает документ под блокировкой ресурса.
// Отсутствие файла — не ошибка: записей ещё нет, возвращается false.
func (s *Store) ReadDocument(ctx context.Context, resource, relPath string, v interface{}) (bool, error) {
	lock, err := s.locks.Acquire(ctx, resource)
	if err != nil {
		return false, err
	}
	defer lock.Release()

	data, err := os.ReadFile(filepath.Join(s.dataPath, relPath))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("не удалось прочитать %s: %w", relPath, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("повреждённый документ %s: %w", relPath, err)
	}
	return true, nil
}

// WriteDocument перезаписывает документ целиком под блокировкой ресурса.
// Запись атомарная: временный файл с uuid-суффиксом и rename, чтобы
// читатель никогда не увидел полузаписанный JSON.
func (s *Store) WriteDocument(ctx context.Context, resource, relPath string, v interface{}) error {
	lock, err := s.locks.Acquire(ctx, resource)
	if err != nil {
		return err
	}
	defer lock.Release()

	path := filepath.Join(s.dataPath, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("не удалось создать каталог для %s: %w", relPath, err)
	}

	data, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать %s: %w", relPath, err)
	}

	tmp := path + ".tmp." + uuid.New().String()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("не удалось записать %s: %w", relPath, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("не удалось заменить %s: %w", relPath, err)
	}
	return nil
}

// ReadFile читает одиночный файл без блокировки (используется при
// массовой загрузке упоминаний, где запись и так атомарна).
func (s *Store) ReadFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Человекочитаемый JSON: отступ в два пробела, UTF-8 без экранирования
// HTML-символов и не-ASCII (кириллица хранится как есть).
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
