package output

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/assetcp/pkg/copier"
	"github.com/arthur-debert/assetcp/pkg/rules"
	"github.com/arthur-debert/assetcp/pkg/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(dryRun bool) *copier.Result {
	return &copier.Result{
		DryRun: dryRun,
		Steps: []copier.StepResult{
			{
				Step: copier.Step{Task: "copy-jquery", Rule: rules.CopyRule{Dest: "./assets/js", Mode: rules.Flatten()}},
				Copies: []copier.Copied{
					{Source: "node_modules/jquery/dist/jquery.min.js", Dest: "assets/js/jquery.min.js", Bytes: 2048},
				},
			},
			{
				Step: copier.Step{Task: "copy-favicon", Rule: rules.CopyRule{Dest: "./assets", Mode: rules.Flatten()}},
			},
		},
	}
}

func TestRenderer_Result(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, true).Result(sampleResult(false)))

	out := buf.String()
	assert.Contains(t, out, "copy-jquery flatten -> ./assets/js")
	assert.Contains(t, out, "node_modules/jquery/dist/jquery.min.js -> assets/js/jquery.min.js")
	assert.Contains(t, out, "no files matched")
	assert.Contains(t, out, "Copied 1 file (2.0 KiB) in 2 steps")
	assert.NotContains(t, out, "\x1b[", "plain output should carry no escape codes")
}

func TestRenderer_ResultDryRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, true).Result(sampleResult(true)))
	assert.Contains(t, buf.String(), "Would copy 1 file")
}

func TestRenderer_Tasks(t *testing.T) {
	g := tasks.NewGraph()
	require.NoError(t, g.Add(tasks.Task{
		Name:        "copy-bulk",
		Description: "dist trees",
		Rules: []rules.CopyRule{{
			Sources: []string{"./node_modules/bootstrap/dist/**/*.+(css|js|map)"},
			Dest:    "./assets/",
			Mode:    rules.StripPrefix(3),
		}},
	}))
	require.NoError(t, g.Add(tasks.Task{Name: "default", Series: []string{"copy-bulk"}}))

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, true).Tasks("split", "the split table", g))

	out := buf.String()
	assert.Contains(t, out, "Variant split")
	assert.Contains(t, out, "the split table")
	assert.Contains(t, out, "copy-bulk  dist trees")
	assert.Contains(t, out, "strip(3) -> ./assets/")
	assert.Contains(t, out, "./node_modules/bootstrap/dist/**/*.+(css|js|map)")
	assert.Contains(t, out, "series: copy-bulk")
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "0 B", humanBytes(0))
	assert.Equal(t, "1023 B", humanBytes(1023))
	assert.Equal(t, "1.0 KiB", humanBytes(1024))
	assert.Equal(t, "1.5 MiB", humanBytes(1536*1024))
}
