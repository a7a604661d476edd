// Package output renders copy results and task graphs for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/assetcp/pkg/copier"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/arthur-debert/assetcp/pkg/tasks"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Renderer writes styled output to w
type Renderer struct {
	w      io.Writer
	styles styles
}

// NewRenderer creates a Renderer. Colour is dropped when noColor is set or
// w is not a terminal.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output.renderer")

	r := lipgloss.NewRenderer(w)
	if noColor || !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}

	log.Debug().
		Bool("noColor", noColor).
		Str("colorProfile", fmt.Sprintf("%v", r.ColorProfile())).
		Msg("Renderer created")

	return &Renderer{w: w, styles: newStyles(r)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Result prints every step of a run followed by a summary line
func (r *Renderer) Result(res *copier.Result) error {
	var b strings.Builder
	s := r.styles

	for _, step := range res.Steps {
		rule := step.Step.Rule
		fmt.Fprintf(&b, "%s %s\n",
			s.task.Render(step.Step.Task),
			s.muted.Render(fmt.Sprintf("%s -> %s", rule.Mode, rule.Dest)))

		if step.Empty() {
			b.WriteString(s.item.Render(s.warning.Render("no files matched")) + "\n")
			continue
		}
		for _, c := range step.Copies {
			line := fmt.Sprintf("%s %s %s", c.Source, s.muted.Render("->"), s.path.Render(c.Dest))
			b.WriteString(s.item.Render(line) + "\n")
		}
	}

	verb := "Copied"
	if res.DryRun {
		verb = "Would copy"
	}
	summary := fmt.Sprintf("%s %d %s (%s) in %d %s",
		verb, res.Files(), plural(res.Files(), "file"), humanBytes(res.Bytes()),
		len(res.Steps), plural(len(res.Steps), "step"))
	b.WriteString(s.success.Render(summary) + "\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Tasks prints the tasks of a graph in declaration order
func (r *Renderer) Tasks(variant, description string, g *tasks.Graph) error {
	var b strings.Builder
	s := r.styles

	b.WriteString(s.title.Render("Variant "+variant) + "\n")
	if description != "" {
		b.WriteString(s.muted.Render(description) + "\n")
	}
	b.WriteString("\n")

	for _, name := range g.Names() {
		t, _ := g.Get(name)
		b.WriteString(s.task.Render(t.Name))
		if t.Description != "" {
			b.WriteString("  " + s.muted.Render(t.Description))
		}
		b.WriteString("\n")

		if t.IsSeries() {
			b.WriteString(s.item.Render("series: "+strings.Join(t.Series, ", ")) + "\n")
			continue
		}
		for _, rule := range t.Rules {
			b.WriteString(s.item.Render(fmt.Sprintf("%s -> %s", rule.Mode, s.path.Render(rule.Dest))) + "\n")
			for _, src := range rule.Sources {
				b.WriteString(s.item.Render("  "+src) + "\n")
			}
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
