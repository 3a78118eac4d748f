package indexcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Key_ChangesWithEitherInput(t *testing.T) {
	assert := assert.New(t)

	base := Key([]byte("rules-v1"), []byte("dict-v1"))
	assert.Equal(base, Key([]byte("rules-v1"), []byte("dict-v1")), "same inputs must hash the same")
	assert.NotEqual(base, Key([]byte("rules-v2"), []byte("dict-v1")))
	assert.NotEqual(base, Key([]byte("rules-v1"), []byte("dict-v2")))
}

func Test_Store_SaveThenLoadRoundTrips(t *testing.T) {
	assert := assert.New(t)

	file := filepath.Join(t.TempDir(), "index.db")
	store, err := Open(file)
	if !assert.NoError(err) {
		return
	}
	defer store.Close()

	ctx := context.Background()
	key := Key([]byte("rules"), []byte("dict"))
	index := map[string]map[string]string{
		"HELLO": {"HEL/O": "hello"},
	}

	assert.NoError(store.Save(ctx, key, index))

	loaded, err := store.Load(ctx, key)
	if assert.NoError(err) {
		assert.Equal(index, loaded)
	}
}

func Test_Store_LoadMissingKeyReturnsErrNotFound(t *testing.T) {
	assert := assert.New(t)

	file := filepath.Join(t.TempDir(), "index.db")
	store, err := Open(file)
	if !assert.NoError(err) {
		return
	}
	defer store.Close()

	_, err = store.Load(context.Background(), "does-not-exist")
	assert.ErrorIs(err, ErrNotFound)
}

func Test_Store_SaveOverwritesExistingKey(t *testing.T) {
	assert := assert.New(t)

	file := filepath.Join(t.TempDir(), "index.db")
	store, err := Open(file)
	if !assert.NoError(err) {
		return
	}
	defer store.Close()

	ctx := context.Background()
	key := Key([]byte("rules"), []byte("dict"))
	assert.NoError(store.Save(ctx, key, map[string]map[string]string{"A": {"X": "y"}}))
	assert.NoError(store.Save(ctx, key, map[string]map[string]string{"B": {"X": "z"}}))

	loaded, err := store.Load(ctx, key)
	if assert.NoError(err) {
		assert.Equal(map[string]map[string]string{"B": {"X": "z"}}, loaded)
	}
}
