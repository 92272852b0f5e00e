package storage_test

import (
	"context"
	"testing"

	"clarityflow/internal/shared/storage"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type record struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	t.Run("missing key", func(t *testing.T) {
		var out []record
		found, err := store.Get(ctx, "nope", &out)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		in := []record{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}
		assert.NoError(t, store.Set(ctx, "records", in))

		var out []record
		found, err := store.Get(ctx, "records", &out)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("remove", func(t *testing.T) {
		assert.NoError(t, store.Set(ctx, "gone", record{ID: "x"}))
		assert.NoError(t, store.Remove(ctx, "gone"))

		var out record
		found, err := store.Get(ctx, "gone", &out)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	in := []record{{ID: "1", Title: "persisted"}}
	assert.NoError(t, store.Set(ctx, "clarityflow-tasks", in))

	var out []record
	found, err := store.Get(ctx, "clarityflow-tasks", &out)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	assert.NoError(t, store.Remove(ctx, "clarityflow-tasks"))
	found, err = store.Get(ctx, "clarityflow-tasks", &out)
	assert.NoError(t, err)
	assert.False(t, found)

	// Remove pada key yang sudah hilang bukan error.
	assert.NoError(t, store.Remove(ctx, "clarityflow-tasks"))
}

func TestFileStoreUnsafeKey(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Set(ctx, "aiChatMessages/user-1", record{ID: "m"}))

	var out record
	found, err := store.Get(ctx, "aiChatMessages/user-1", &out)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "m", out.ID)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	rdb, mock := redismock.NewClientMock()
	store := storage.NewRedisStore(rdb, "clarityflow")

	t.Run("set", func(t *testing.T) {
		mock.ExpectSet("clarityflow:records", []byte(`[{"id":"1","title":"a"}]`), 0).SetVal("OK")
		err := store.Set(ctx, "records", []record{{ID: "1", Title: "a"}})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get missing", func(t *testing.T) {
		mock.ExpectGet("clarityflow:none").RedisNil()
		var out []record
		found, err := store.Get(ctx, "none", &out)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get", func(t *testing.T) {
		mock.ExpectGet("clarityflow:records").SetVal(`[{"id":"1","title":"a"}]`)
		var out []record
		found, err := store.Get(ctx, "records", &out)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "1", out[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
