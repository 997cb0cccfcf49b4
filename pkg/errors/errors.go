package errors

import "fmt"

var (
	// Хранилище
	ErrNotFound    = fmt.Errorf("запись не найдена")
	ErrLockTimeout = fmt.Errorf("не удалось получить блокировку ресурса")
	ErrBadRequest  = fmt.Errorf("неверный запрос")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Unwrap() error { return ErrBadRequest }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// LockTimeoutError сообщает, какой именно ресурс был занят.
// errors.Is(err, ErrLockTimeout) работает через Unwrap.
type LockTimeoutError struct {
	Resource string
}

func (e *LockTimeoutError) Error() string {
	return fmt.Sprintf("не удалось получить блокировку ресурса %q", e.Resource)
}

func (e *LockTimeoutError) Unwrap() error { return ErrLockTimeout }

func NewLockTimeoutError(resource string) error {
	return &LockTimeoutError{Resource: resource}
}
