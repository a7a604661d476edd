package copier

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/arthur-debert/assetcp/pkg/filesystem"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/arthur-debert/assetcp/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Step is one rule scheduled for execution, labelled with the task it came from
type Step struct {
	Task  string
	Index int
	Rule  rules.CopyRule
}

// Copied records one file written (or, in a dry run, planned)
type Copied struct {
	Source string
	Dest   string
	Bytes  int64
}

// StepResult is the outcome of one step
type StepResult struct {
	Step   Step
	Copies []Copied
}

// Empty reports whether the step's patterns matched no files
func (s StepResult) Empty() bool {
	return len(s.Copies) == 0
}

// Result is the outcome of a full run
type Result struct {
	DryRun   bool
	Steps    []StepResult
	Duration time.Duration
}

// Files returns the number of files copied across all steps
func (r *Result) Files() int {
	n := 0
	for _, s := range r.Steps {
		n += len(s.Copies)
	}
	return n
}

// Bytes returns the number of bytes copied across all steps
func (r *Result) Bytes() int64 {
	var n int64
	for _, s := range r.Steps {
		for _, c := range s.Copies {
			n += c.Bytes
		}
	}
	return n
}

// Options configures a Copier
type Options struct {
	FS     afero.Fs
	DryRun bool
}

// Copier applies copy rules to a project filesystem
type Copier struct {
	fs     afero.Fs
	dryRun bool
	logger zerolog.Logger
}

// New creates a Copier
func New(opts Options) *Copier {
	return &Copier{
		fs:     opts.FS,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("copier"),
	}
}

// Run executes steps in order. Any error aborts the remaining steps.
func (c *Copier) Run(ctx context.Context, steps []Step) (*Result, error) {
	done := logging.LogOperationStart(c.logger, "copy")
	defer done()

	start := time.Now()
	result := &Result{DryRun: c.dryRun}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "copy run cancelled").
				WithDetail("task", step.Task)
		}

		copies, err := c.Apply(step.Rule)
		if err != nil {
			c.logger.Error().
				Err(err).
				Str("task", step.Task).
				Int("rule", step.Index).
				Msg("Copy step failed")
			return nil, errors.Wrapf(err, codeOf(err), "task %s rule %d failed", step.Task, step.Index).
				WithDetail("task", step.Task)
		}

		if len(copies) == 0 {
			c.logger.Info().
				Str("task", step.Task).
				Strs("patterns", step.Rule.Sources).
				Msg("No files matched, continuing")
		}

		result.Steps = append(result.Steps, StepResult{Step: step, Copies: copies})
	}

	result.Duration = time.Since(start)

	c.logger.Info().
		Int("steps", len(result.Steps)).
		Int("files", result.Files()).
		Int64("bytes", result.Bytes()).
		Bool("dryRun", c.dryRun).
		Msg("Copy run completed")

	return result, nil
}

// Apply resolves a single rule and copies its matches
func (c *Copier) Apply(rule rules.CopyRule) ([]Copied, error) {
	matches, err := rules.Resolve(c.fs, rule)
	if err != nil {
		return nil, err
	}

	copies := make([]Copied, 0, len(matches))
	for _, m := range matches {
		src := filepath.FromSlash(m.Source)
		dst := filepath.FromSlash(m.Dest)

		if c.dryRun {
			info, err := c.fs.Stat(src)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrIO, "cannot stat source").
					WithDetail("source", m.Source)
			}
			c.logger.Info().Str("source", m.Source).Str("dest", m.Dest).Msg("Would copy")
			copies = append(copies, Copied{Source: m.Source, Dest: m.Dest, Bytes: info.Size()})
			continue
		}

		n, err := filesystem.CopyFile(c.fs, src, dst)
		if err != nil {
			return nil, err
		}

		c.logger.Debug().
			Str("source", m.Source).
			Str("dest", m.Dest).
			Int64("bytes", n).
			Msg("Copied file")
		copies = append(copies, Copied{Source: m.Source, Dest: m.Dest, Bytes: n})
	}

	return copies, nil
}

func codeOf(err error) errors.ErrorCode {
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return code
	}
	return errors.ErrIO
}
