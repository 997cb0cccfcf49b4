package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officials-tracker/internal/entities"
	apperrors "officials-tracker/pkg/errors"
)

func TestPositionRepository_LoadAll_EmptyStore(t *testing.T) {
	repo := NewPositionRepository(newTestStore(t))

	positions, err := repo.LoadAll(context.Background())
	require.NoError(t, err, "Отсутствие документа — не ошибка")
	assert.Empty(t, positions)
}

func TestPositionRepository_AddAndGet(t *testing.T) {
	repo := NewPositionRepository(newTestStore(t))
	ctx := context.Background()

	position := entities.NewPosition("pos_001", "Министр", "Минфин", null.StringFrom("Руководство"), "")
	require.NoError(t, repo.Add(ctx, position))

	found, err := repo.GetByID(ctx, "pos_001")
	require.NoError(t, err)
	assert.Equal(t, position, *found)

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "pos_999")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPositionRepository_Update(t *testing.T) {
	repo := NewPositionRepository(newTestStore(t))
	ctx := context.Background()

	position := entities.NewPosition("pos_001", "Министр", "Минфин", null.String{}, "")
	require.NoError(t, repo.Add(ctx, position))

	position.Title = "Первый заместитель министра"
	require.NoError(t, repo.Update(ctx, position))

	found, err := repo.GetByID(ctx, "pos_001")
	require.NoError(t, err)
	assert.Equal(t, "Первый заместитель министра", found.Title)

	t.Run("no insert on miss", func(t *testing.T) {
		missing := entities.NewPosition("pos_042", "Советник", "Минфин", null.String{}, "")
		err := repo.Update(ctx, missing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		positions, err := repo.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, positions, 1)
	})
}

func TestPositionRepository_NextID(t *testing.T) {
	repo := NewPositionRepository(newTestStore(t))
	ctx := context.Background()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pos_001", id)

	require.NoError(t, repo.SaveAll(ctx, []entities.Position{
		entities.NewPosition("pos_003", "A", "D", null.String{}, ""),
		entities.NewPosition("pos_007", "B", "D", null.String{}, ""),
		entities.NewPosition("pos_oops", "C", "D", null.String{}, ""),
	}))

	id, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pos_008", id)
}

// Повторное сохранение неизменённой коллекции даёт байт-в-байт тот же
// документ.
func TestPositionRepository_SaveLoadIdempotent(t *testing.T) {
	storage := newTestStore(t)
	repo := NewPositionRepository(storage)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, []entities.Position{
		entities.NewPosition("pos_001", "Министр", "Минфин", null.StringFrom("Руководство"), ""),
		entities.NewPosition("pos_002", "Заместитель министра", "Минфин", null.String{}, "regional"),
	}))

	docPath := filepath.Join(storage.DataPath(), "positions", "positions.json")
	before, err := os.ReadFile(docPath)
	require.NoError(t, err)

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(ctx, loaded))

	after, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
