package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels_by_input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		path := writeDataset(t, `{"red shoes":{"Label":["footwear","red"]},"plumber":{"Label":"trades"}}`)

		repo, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.Size())

		label, ok := repo.Lookup("red shoes")
		require.True(t, ok)
		assert.Equal(t, []string{"footwear", "red"}, label.List)

		label, ok = repo.Lookup("plumber")
		require.True(t, ok)
		assert.False(t, label.IsList)
		assert.Equal(t, "trades", label.Scalar)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeDataset(t, `{"red shoes": {`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed label value", func(t *testing.T) {
		path := writeDataset(t, `{"red shoes":{"Label":42}}`)
		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		path := writeDataset(t, `{}`)
		repo, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.Size())
		_, ok := repo.Lookup("anything")
		assert.False(t, ok)
	})
}

func TestLookupIsExactMatch(t *testing.T) {
	repo, err := Load(strings.NewReader(`{"red shoes":{"Label":["footwear","red"]}}`))
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		_, ok := repo.Lookup("red shoes")
		assert.True(t, ok)
	})

	t.Run("no case folding", func(t *testing.T) {
		_, ok := repo.Lookup("Red Shoes")
		assert.False(t, ok)
	})

	t.Run("no trimming", func(t *testing.T) {
		_, ok := repo.Lookup(" red shoes")
		assert.False(t, ok)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := repo.Lookup("blue shoes")
		assert.False(t, ok)
	})
}
