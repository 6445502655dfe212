package blob

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/errs"
)

var ErrInvalidKey = errs.New("invalid blob key")

// FileStore keeps blobs under a root directory; the router serves that directory at BaseURL.
type FileStore struct {
	root    string
	baseURL string
}

func NewFileStore(cfg config.BlobConfig) (*FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errs.Wrap(err, "create blob directory")
	}
	return &FileStore{root: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

// Put writes to a temp file first so readers never see a partial blob.
func (s *FileStore) Put(ctx context.Context, key, _ string, r io.Reader) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", ErrInvalidKey
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", errs.Wrap(err, "create blob directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", errs.Wrap(err, "create temp blob")
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", errs.Wrap(err, "write blob")
	}
	if err := tmp.Close(); err != nil {
		return "", errs.Wrap(err, "close blob")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", errs.Wrap(err, "move blob")
	}

	return s.baseURL + "/" + clean, nil
}
