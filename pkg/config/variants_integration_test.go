package config

import (
	"context"
	"testing"

	"github.com/arthur-debert/assetcp/pkg/copier"
	"github.com/arthur-debert/assetcp/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVariant(t *testing.T, variant string) map[string]string {
	t.Helper()

	cfg, err := Load(LoadOptions{Variant: variant})
	require.NoError(t, err)
	g, err := cfg.Graph()
	require.NoError(t, err)

	fsys := testutil.NewProject(t, testutil.VendorTree())
	_, err = g.Run(context.Background(), copier.New(copier.Options{FS: fsys}))
	require.NoError(t, err)

	return testutil.ReadTree(t, fsys, "assets")
}

func TestVariant_Split(t *testing.T) {
	assert.Equal(t, map[string]string{
		"css/bootstrap.min.css":                     "bootstrap-css",
		"css/bootstrap.min.css.map":                 "bootstrap-css-map",
		"css/select2.min.css":                       "select2-css",
		"css/select2-bootstrap-5-theme.min.css":     "theme-css",
		"css/select2-bootstrap-5-theme.min.css.map": "theme-css-map",
		"js/bootstrap.bundle.min.js":                "bootstrap-js",
		"js/bootstrap.bundle.min.js.map":            "bootstrap-js-map",
		"js/select2.min.js":                         "select2-js",
		"js/i18n/de.js":                             "select2-de",
		"js/jquery.min.js":                          "jquery-js",
		"js/jquery.min.map":                         "jquery-map",
		"favicon.svg":                               "<svg/>",
	}, runVariant(t, "split"))
}

func TestVariant_Bulk(t *testing.T) {
	assert.Equal(t, map[string]string{
		"css/bootstrap.min.css":                 "bootstrap-css",
		"css/bootstrap.min.css.map":             "bootstrap-css-map",
		"css/select2.min.css":                   "select2-css",
		"js/bootstrap.bundle.min.js":            "bootstrap-js",
		"js/bootstrap.bundle.min.js.map":        "bootstrap-js-map",
		"js/select2.min.js":                     "select2-js",
		"js/i18n/de.js":                         "select2-de",
		"jquery.min.js":                         "jquery-js",
		"jquery.min.map":                        "jquery-map",
		"select2-bootstrap-5-theme.min.css":     "theme-css",
		"select2-bootstrap-5-theme.min.css.map": "theme-css-map",
		"favicon.svg":                           "<svg/>",
	}, runVariant(t, "bulk"))
}
