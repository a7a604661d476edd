package testutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FailingFs wraps an afero.Fs and returns an injected error when a write is
// attempted on one of the registered paths
type FailingFs struct {
	afero.Fs
	errorPaths map[string]error
}

// NewFailingFs wraps fsys with no failures registered
func NewFailingFs(fsys afero.Fs) *FailingFs {
	return &FailingFs{Fs: fsys, errorPaths: make(map[string]error)}
}

// FailWrite makes every later write-mode open of name return err
func (f *FailingFs) FailWrite(name string, err error) *FailingFs {
	f.errorPaths[filepath.Clean(filepath.FromSlash(name))] = err
	return f
}

// OpenFile injects the registered error for write-mode opens
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		if err, ok := f.errorPaths[filepath.Clean(name)]; ok {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Create routes through OpenFile so injected errors apply
func (f *FailingFs) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}
