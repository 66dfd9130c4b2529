package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/artcrawl"
	"github.com/fwojciec/artcrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeeds(t *testing.T) {
	t.Parallel()

	t.Run("reads urls in file order skipping blank lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seeds.txt")
		content := "https://news.example/politique\n\n  https://news.example/sport  \n\t\nhttps://news.example/culture"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		seeds, err := fs.ReadSeeds(path)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://news.example/politique",
			"https://news.example/sport",
			"https://news.example/culture",
		}, seeds)
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seeds.txt")
		require.NoError(t, os.WriteFile(path, []byte("https://a.example\r\nhttps://b.example\r\n"), 0644))

		seeds, err := fs.ReadSeeds(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, seeds)
	})

	t.Run("empty file yields empty list", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "seeds.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		seeds, err := fs.ReadSeeds(path)

		require.NoError(t, err)
		assert.NotNil(t, seeds)
		assert.Empty(t, seeds)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadSeeds(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, artcrawl.ENOTFOUND, artcrawl.ErrorCode(err))
	})

	t.Run("directory is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadSeeds(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, artcrawl.EINVALID, artcrawl.ErrorCode(err))
	})
}
