package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/assetcp/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewProject creates an in-memory project with the given files
func NewProject(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fsys := filesystem.NewMemory()
	WriteFiles(t, fsys, files)
	return fsys
}

// WriteFiles writes each path->content pair, creating parent directories
func WriteFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()

	for name, content := range files {
		name = filepath.FromSlash(name)
		require.NoError(t, fsys.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0644))
	}
}

// VendorTree returns a node_modules layout shaped like the real vendor packages
func VendorTree() map[string]string {
	return map[string]string{
		"node_modules/bootstrap/dist/css/bootstrap.min.css":          "bootstrap-css",
		"node_modules/bootstrap/dist/css/bootstrap.min.css.map":      "bootstrap-css-map",
		"node_modules/bootstrap/dist/js/bootstrap.bundle.min.js":     "bootstrap-js",
		"node_modules/bootstrap/dist/js/bootstrap.bundle.min.js.map": "bootstrap-js-map",
		"node_modules/bootstrap/package.json":                        "{}",
		"node_modules/bootstrap/scss/_variables.scss":                "$x: 1;",

		"node_modules/select2/dist/css/select2.min.css": "select2-css",
		"node_modules/select2/dist/js/select2.min.js":   "select2-js",
		"node_modules/select2/dist/js/i18n/de.js":       "select2-de",

		"node_modules/jquery/dist/jquery.min.js":  "jquery-js",
		"node_modules/jquery/dist/jquery.min.map": "jquery-map",
		"node_modules/jquery/dist/jquery.js":      "jquery-full",

		"node_modules/select2-bootstrap-5-theme/dist/select2-bootstrap-5-theme.min.css":     "theme-css",
		"node_modules/select2-bootstrap-5-theme/dist/select2-bootstrap-5-theme.min.css.map": "theme-css-map",
		"node_modules/select2-bootstrap-5-theme/dist/select2-bootstrap-5-theme.css":         "theme-full",

		"favicon.svg": "<svg/>",
	}
}

// ReadTree returns every file under dir as slash path (relative to dir) -> content
func ReadTree(t *testing.T, fsys afero.Fs, dir string) map[string]string {
	t.Helper()

	tree := make(map[string]string)
	exists, err := afero.DirExists(fsys, dir)
	require.NoError(t, err)
	if !exists {
		return tree
	}

	err = afero.Walk(fsys, dir, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		content, err := afero.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(t, err)

	return tree
}

// AssertFile fails the test unless name exists with exactly content
func AssertFile(t *testing.T, fsys afero.Fs, name, content string) {
	t.Helper()

	got, err := afero.ReadFile(fsys, filepath.FromSlash(name))
	require.NoError(t, err, "expected %s to exist", name)
	require.Equal(t, content, string(got), "content of %s", name)
}

// AssertNoFile fails the test if name exists
func AssertNoFile(t *testing.T, fsys afero.Fs, name string) {
	t.Helper()

	exists, err := afero.Exists(fsys, filepath.FromSlash(name))
	require.NoError(t, err)
	require.False(t, exists, "expected %s not to exist", name)
}
