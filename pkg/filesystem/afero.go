package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/spf13/afero"
)

// MemoryRoot is where NewMemory anchors the project inside its MemMapFs
const MemoryRoot = "/project"

// NewMemory creates an in-memory filesystem rooted like NewOS
func NewMemory() afero.Fs {
	mem := afero.NewMemMapFs()
	_ = mem.MkdirAll(MemoryRoot, 0755)
	return afero.NewBasePathFs(mem, MemoryRoot)
}

// IOFS exposes fsys through io/fs for pattern walking
func IOFS(fsys afero.Fs) fs.FS {
	return afero.NewIOFS(fsys)
}

// CopyFile copies src to dst byte-for-byte and returns the number of bytes written.
// Missing parent directories of dst are created and an existing dst is truncated.
// The source permission bits are carried over.
func CopyFile(fsys afero.Fs, src, dst string) (int64, error) {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	info, err := fsys.Stat(src)
	if err != nil {
		return 0, ioError(err, "cannot stat source", src, dst)
	}
	if !info.Mode().IsRegular() {
		return 0, ioError(fs.ErrInvalid, "source is not a regular file", src, dst)
	}
	if src == dst {
		return info.Size(), nil
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, ioError(err, "cannot create destination directory", src, dst)
	}

	in, err := fsys.Open(src)
	if err != nil {
		return 0, ioError(err, "cannot open source", src, dst)
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, ioError(err, "cannot open destination", src, dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, ioError(err, "cannot write destination", src, dst)
	}
	if err := out.Close(); err != nil {
		return n, ioError(err, "cannot close destination", src, dst)
	}

	return n, nil
}

func ioError(err error, msg, src, dst string) error {
	return errors.Wrap(err, errors.ErrIO, msg).
		WithDetail("source", src).
		WithDetail("dest", dst)
}
