package filelock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "officials-tracker/pkg/errors"
)

func newTestManager(t *testing.T, timeout time.Duration) *Manager {
	t.Helper()
	manager, err := NewManager(t.TempDir(), timeout)
	require.NoError(t, err)
	return manager
}

func TestManager_AcquireAndRelease(t *testing.T) {
	manager := newTestManager(t, time.Second)
	ctx := context.Background()

	lock, err := manager.Acquire(ctx, "positions")
	require.NoError(t, err)
	require.NoError(t, lock.Release())

	// После освобождения ресурс захватывается повторно.
	lock, err = manager.Acquire(ctx, "positions")
	require.NoError(t, err)
	require.NoError(t, lock.Release())
}

func TestManager_SameResourceTimesOut(t *testing.T) {
	manager := newTestManager(t, 300*time.Millisecond)
	ctx := context.Background()

	lock, err := manager.Acquire(ctx, "persons")
	require.NoError(t, err)
	defer lock.Release()

	start := time.Now()
	_, err = manager.Acquire(ctx, "persons")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLockTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond,
		"Таймаут выдерживается, а не возвращается мгновенно")
}

func TestManager_DistinctResourcesDoNotBlock(t *testing.T) {
	manager := newTestManager(t, 200*time.Millisecond)
	ctx := context.Background()

	personsLock, err := manager.Acquire(ctx, "persons")
	require.NoError(t, err)
	defer personsLock.Release()

	positionsLock, err := manager.Acquire(ctx, "positions")
	require.NoError(t, err, "Блокировки разных коллекций независимы")
	defer positionsLock.Release()

	mentionsLock, err := manager.Acquire(ctx, "mentions_person_001")
	require.NoError(t, err)
	defer mentionsLock.Release()
}

func TestManager_WaiterGetsLockAfterRelease(t *testing.T) {
	manager := newTestManager(t, 2*time.Second)
	ctx := context.Background()

	lock, err := manager.Acquire(ctx, "departments")
	require.NoError(t, err)

	acquired := make(chan error, 1)
	go func() {
		second, err := manager.Acquire(ctx, "departments")
		if err == nil {
			second.Release()
		}
		acquired <- err
	}()

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, lock.Release())

	select {
	case err := <-acquired:
		assert.NoError(t, err, "Ожидающий получает блокировку после освобождения")
	case <-time.After(2 * time.Second):
		t.Fatal("Ожидающий так и не получил блокировку")
	}
}

func TestManager_CancelledContext(t *testing.T) {
	manager := newTestManager(t, 5*time.Second)

	lock, err := manager.Acquire(context.Background(), "mentions_person_001")
	require.NoError(t, err)
	defer lock.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err = manager.Acquire(ctx, "mentions_person_001")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second,
		"Отменённый контекст не ждёт полный таймаут менеджера")
}
