// Package tasks composes copy rules into named tasks.
//
// A task either owns copy rules or runs other tasks in series. Resolving a
// task flattens it depth-first into the exact order its rules will execute.
// There are no parallel branches. The "default" task is the entry point when
// no task is named.
package tasks

import (
	"context"
	"strings"

	"github.com/arthur-debert/assetcp/pkg/copier"
	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/arthur-debert/assetcp/pkg/registry"
	"github.com/arthur-debert/assetcp/pkg/rules"
)

// DefaultTask runs when no task is named
const DefaultTask = "default"

// Task is a named group of copy rules, or a series of other tasks
type Task struct {
	Name        string
	Description string
	Rules       []rules.CopyRule
	Series      []string
}

// IsSeries reports whether the task only sequences other tasks
func (t Task) IsSeries() bool {
	return len(t.Series) > 0
}

// Graph holds tasks in declaration order
type Graph struct {
	tasks registry.Registry[Task]
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{tasks: registry.New[Task]()}
}

// Add registers a task. Series references are checked at Resolve time so
// tasks may be declared in any order.
func (g *Graph) Add(t Task) error {
	if len(t.Rules) > 0 && len(t.Series) > 0 {
		return errors.Newf(errors.ErrInvalidInput, "task %s has both rules and a series", t.Name).
			WithDetail("task", t.Name)
	}
	for i, r := range t.Rules {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "task %s rule %d", t.Name, i).
				WithDetail("task", t.Name)
		}
	}

	if err := g.tasks.Register(t.Name, t); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot add task %q", t.Name).
			WithDetail("task", t.Name)
	}
	return nil
}

// Get returns a task by name
func (g *Graph) Get(name string) (Task, bool) {
	t, err := g.tasks.Get(name)
	return t, err == nil
}

// Names lists the tasks in declaration order
func (g *Graph) Names() []string {
	return g.tasks.List()
}

// Resolve flattens the named tasks into ordered copy steps.
// With no names the default task is resolved.
func (g *Graph) Resolve(names ...string) ([]copier.Step, error) {
	if len(names) == 0 {
		names = []string{DefaultTask}
	}

	var steps []copier.Step
	for _, name := range names {
		resolved, err := g.resolve(name, nil)
		if err != nil {
			return nil, err
		}
		steps = append(steps, resolved...)
	}
	return steps, nil
}

func (g *Graph) resolve(name string, path []string) ([]copier.Step, error) {
	for _, seen := range path {
		if seen == name {
			cycle := strings.Join(append(path, name), " -> ")
			return nil, errors.Newf(errors.ErrTaskCycle, "task cycle: %s", cycle).
				WithDetail("task", name)
		}
	}

	t, ok := g.Get(name)
	if !ok {
		msg := "unknown task " + name
		if len(path) > 0 {
			msg += " (referenced by " + path[len(path)-1] + ")"
		}
		return nil, errors.New(errors.ErrTaskNotFound, msg).WithDetail("task", name)
	}

	if !t.IsSeries() {
		steps := make([]copier.Step, 0, len(t.Rules))
		for i, r := range t.Rules {
			steps = append(steps, copier.Step{Task: t.Name, Index: i, Rule: r})
		}
		return steps, nil
	}

	path = append(path, name)
	var steps []copier.Step
	for _, child := range t.Series {
		resolved, err := g.resolve(child, path)
		if err != nil {
			return nil, err
		}
		steps = append(steps, resolved...)
	}
	return steps, nil
}

// Validate resolves every task once so broken references and cycles surface early
func (g *Graph) Validate() error {
	for _, name := range g.Names() {
		if _, err := g.resolve(name, nil); err != nil {
			return err
		}
	}
	return nil
}

// Run resolves the named tasks and executes them with c
func (g *Graph) Run(ctx context.Context, c *copier.Copier, names ...string) (*copier.Result, error) {
	logger := logging.GetLogger("tasks")

	steps, err := g.Resolve(names...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("tasks", names).
		Int("steps", len(steps)).
		Msg("Resolved task graph")

	return c.Run(ctx, steps)
}
