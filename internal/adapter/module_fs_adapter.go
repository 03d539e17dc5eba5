package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/wasmut/internal/model"
)

// ModuleFSAdapter abstracts the filesystem operations the workflow needs to
// load the module under test, so the domain can be tested without the disk.
type ModuleFSAdapter interface {
	// ReadModule loads the binary module at path.
	ReadModule(ctx context.Context, path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 hex digest of the file at path.
	HashFile(ctx context.Context, path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalModuleFSAdapter is the os-backed ModuleFSAdapter.
type LocalModuleFSAdapter struct{}

// NewLocalModuleFSAdapter constructs a LocalModuleFSAdapter.
func NewLocalModuleFSAdapter() *LocalModuleFSAdapter {
	return &LocalModuleFSAdapter{}
}

// ReadModule loads the module bytes from disk.
func (a *LocalModuleFSAdapter) ReadModule(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	// #nosec G304 - reading the user-supplied module is the purpose of this call
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalModuleFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// #nosec G304 - path is the module under test
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalModuleFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalModuleFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
