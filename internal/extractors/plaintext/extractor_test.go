package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtensions(t *testing.T) {
	exts := New().SupportedExtensions()

	require.Len(t, exts, 1)
	assert.Contains(t, exts, ".txt")
}

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("reads file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sample.txt")
		require.NoError(t, os.WriteFile(path, []byte("plain text body\n"), 0o600))

		text, err := New().Extract(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "plain text body\n", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Extract(ctx, filepath.Join(t.TempDir(), "absent.txt"))
		assert.Error(t, err)
	})
}
