package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), 2*time.Second)
	require.NoError(t, err)
	return store
}

func TestNew_CreatesLayout(t *testing.T) {
	base := t.TempDir()
	_, err := New(base, 0)
	require.NoError(t, err)

	for _, dir := range []string{
		filepath.Join(base, "data", "positions"),
		filepath.Join(base, "data", "persons"),
		filepath.Join(base, "data", "mentions"),
		filepath.Join(base, ".locks"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}
}

func TestStore_ReadDocument_Absent(t *testing.T) {
	store := newStore(t)

	var doc testDoc
	found, err := store.ReadDocument(context.Background(), "test", "test/doc.json", &doc)
	require.NoError(t, err, "Отсутствие документа — не ошибка")
	assert.False(t, found)
}

func TestStore_WriteThenRead(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	written := testDoc{Name: "Кириллица как есть", Items: []string{"a", "b"}}
	require.NoError(t, store.WriteDocument(ctx, "test", "test/doc.json", written))

	var read testDoc
	found, err := store.ReadDocument(ctx, "test", "test/doc.json", &read)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, written, read)

	t.Run("human readable on disk", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(store.DataPath(), "test", "doc.json"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Кириллица как есть", "Не-ASCII не экранируется")
		assert.Contains(t, string(raw), "  \"name\"", "Отступ в два пробела")
	})
}

func TestStore_WriteDocument_NoTempLeftovers(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.WriteDocument(ctx, "test", "test/doc.json", testDoc{Name: "x"}))

	entries, err := os.ReadDir(filepath.Join(store.DataPath(), "test"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "Временный файл заменяется переименованием")
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestStore_ReadDocument_Corrupted(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	path := filepath.Join(store.DataPath(), "test", "doc.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{оборванный"), 0o644))

	var doc testDoc
	_, err := store.ReadDocument(ctx, "test", "test/doc.json", &doc)
	assert.Error(t, err, "Повреждённый общий документ — ошибка, а не пустой результат")
}
