// Пакет filelock даёт именованные советующие (advisory) блокировки
// поверх файлов-заглушек в каталоге .locks. Одна блокировка — один
// логический документ: "positions", "persons", "mentions_<person_id>" и т.д.
//
// Блокировка работает между процессами, разделяющими один каталог .locks
// (несколько сессий на общем диске). Это не распределённый консенсус.
package filelock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	apperrors "officials-tracker/pkg/errors"
)

const retryDelay = 50 * time.Millisecond

type Manager struct {
	dir     string
	timeout time.Duration
}

func NewManager(dir string, timeout time.Duration) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог блокировок: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Manager{dir: dir, timeout: timeout}, nil
}

// Lock — захваченная блокировка. Освобождение обязательно на всех путях
// выхода: defer lock.Release() сразу после Acquire.
type Lock struct {
	fl *flock.Flock
}

func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Acquire ждёт эксклюзивную блокировку ресурса не дольше таймаута
// менеджера. По истечении возвращает ошибку, для которой
// errors.Is(err, apperrors.ErrLockTimeout) == true — вызывающий решает,
// повторить или показать пользователю.
func (m *Manager) Acquire(ctx context.Context, resource string) (*Lock, error) {
	lockPath := filepath.Join(m.dir, resource+".lock")
	fl := flock.New(lockPath)

	waitCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	locked, err := fl.TryLockContext(waitCtx, retryDelay)
	if err != nil && waitCtx.Err() == nil {
		return nil, fmt.Errorf("ошибка блокировки %s: %w", resource, err)
	}
	if !locked {
		return nil, apperrors.NewLockTimeoutError(resource)
	}
	return &Lock{fl: fl}, nil
}
