package rules

import (
	"testing"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestination(t *testing.T) {
	tests := []struct {
		name   string
		rule   CopyRule
		source string
		want   string
	}{
		{
			name:   "strip keeps inner structure",
			rule:   CopyRule{Dest: "./assets/", Mode: StripPrefix(3)},
			source: "vendor/package/dist/css/theme.css",
			want:   "assets/css/theme.css",
		},
		{
			name:   "strip from node_modules package",
			rule:   CopyRule{Dest: "assets", Mode: StripPrefix(3)},
			source: "node_modules/pkgroot/dist/css/theme.min.css",
			want:   "assets/css/theme.min.css",
		},
		{
			name:   "strip zero keeps whole path",
			rule:   CopyRule{Dest: "assets", Mode: StripPrefix(0)},
			source: "favicon.svg",
			want:   "assets/favicon.svg",
		},
		{
			name:   "strip deeper than path keeps base name",
			rule:   CopyRule{Dest: "assets", Mode: StripPrefix(3)},
			source: "node_modules/jquery/dist/jquery.min.js",
			want:   "assets/jquery.min.js",
		},
		{
			name:   "strip far past the end",
			rule:   CopyRule{Dest: "assets", Mode: StripPrefix(10)},
			source: "favicon.svg",
			want:   "assets/favicon.svg",
		},
		{
			name:   "flatten drops directories",
			rule:   CopyRule{Dest: "./assets/js", Mode: Flatten()},
			source: "node_modules/jquery/dist/jquery.min.js",
			want:   "assets/js/jquery.min.js",
		},
		{
			name:   "flatten root file",
			rule:   CopyRule{Dest: "./assets", Mode: Flatten()},
			source: "favicon.svg",
			want:   "assets/favicon.svg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Destination(tt.source))
		})
	}
}

func TestValidate(t *testing.T) {
	ok := CopyRule{Sources: []string{"./favicon.svg"}, Dest: "./assets", Mode: Flatten()}
	require.NoError(t, ok.Validate())

	bad := []CopyRule{
		{Dest: "assets", Mode: Flatten()},
		{Sources: []string{"a"}, Dest: "", Mode: Flatten()},
		{Sources: []string{"a"}, Dest: "../outside", Mode: Flatten()},
		{Sources: []string{"a"}, Dest: "/abs", Mode: Flatten()},
		{Sources: []string{"a"}, Dest: "assets", Mode: StripPrefix(-1)},
		{Sources: []string{"a"}, Dest: "assets", Mode: PathMode{Kind: "mirror"}},
	}
	for _, r := range bad {
		err := r.Validate()
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "rule %+v: %v", r, err)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("strip", 3)
	require.NoError(t, err)
	assert.Equal(t, StripPrefix(3), m)
	assert.Equal(t, "strip(3)", m.String())

	m, err = ParseMode("Flatten", 0)
	require.NoError(t, err)
	assert.Equal(t, Flatten(), m)
	assert.Equal(t, "flatten", m.String())

	m, err = ParseMode("", 0)
	require.NoError(t, err)
	assert.Equal(t, Flatten(), m)

	_, err = ParseMode("flatten", 2)
	assert.Error(t, err)
	_, err = ParseMode("strip", -1)
	assert.Error(t, err)
	_, err = ParseMode("hash", 0)
	assert.Error(t, err)
}
