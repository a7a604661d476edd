package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteExtglob(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"*.css", "*.css"},
		{"*.+(css|js|map)", "*.{css,js,map}"},
		{"*.@(css|js)", "*.{css,js}"},
		{"@(dist|build)/**/*.+(css|map)", "{dist,build}/**/*.{css,map}"},
		{"*.+(min.@(css|js)|map)", "*.{min.{css,js},map}"},
		{"lit\\+(x)", "lit\\+(x)"},
		{"*.+({a,b}|c)", "*.{{a,b},c}"},
	}

	for _, tt := range tests {
		got, err := rewriteExtglob(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRewriteExtglob_Unsupported(t *testing.T) {
	for _, in := range []string{"*.?(css)", "*.*(css)", "!(min).js", "+(a|b"} {
		_, err := rewriteExtglob(in)
		assert.Error(t, err, in)
	}
}
