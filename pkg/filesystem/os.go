package filesystem

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/spf13/afero"
)

// NewOS returns an OS-backed filesystem rooted at root
func NewOS(root string) (afero.Fs, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve project root %s", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot access project root %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "project root %s is not a directory", abs)
	}

	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}
