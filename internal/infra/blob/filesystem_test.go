//go:build unit

package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"find-my-space/internal/infra/blob"
	"find-my-space/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := blob.NewFileStore(config.BlobConfig{Dir: dir, BaseURL: "/files/"})
	require.NoError(t, err)

	t.Run("stores the content and returns its url", func(t *testing.T) {
		url, err := store.Put(context.Background(), "idProofs/uid_proof.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))

		require.NoError(t, err)
		assert.Equal(t, "/files/idProofs/uid_proof.pdf", url)
		data, err := os.ReadFile(filepath.Join(dir, "idProofs", "uid_proof.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
	})

	t.Run("rejects keys escaping the root", func(t *testing.T) {
		for _, key := range []string{"../etc/passwd", "idProofs/../../x", "", "/abs"} {
			_, err := store.Put(context.Background(), key, "text/plain", strings.NewReader("x"))
			assert.ErrorIs(t, err, blob.ErrInvalidKey, key)
		}
	})
}
