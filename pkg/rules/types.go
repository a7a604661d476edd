package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/arthur-debert/assetcp/pkg/errors"
)

// ModeKind selects how a matched path is mapped under the destination
type ModeKind string

const (
	// ModeStripPrefix removes leading path segments and keeps the remainder
	ModeStripPrefix ModeKind = "strip"
	// ModeFlatten keeps only the base name
	ModeFlatten ModeKind = "flatten"
)

// PathMode is a ModeKind plus its strip depth
type PathMode struct {
	Kind  ModeKind
	Strip int
}

// StripPrefix returns a mode that drops the first n path segments
func StripPrefix(n int) PathMode {
	return PathMode{Kind: ModeStripPrefix, Strip: n}
}

// Flatten returns a mode that writes files under their base name only
func Flatten() PathMode {
	return PathMode{Kind: ModeFlatten}
}

// ParseMode builds a PathMode from its configuration form
func ParseMode(kind string, strip int) (PathMode, error) {
	switch ModeKind(strings.ToLower(strings.TrimSpace(kind))) {
	case ModeStripPrefix:
		if strip < 0 {
			return PathMode{}, errors.Newf(errors.ErrInvalidInput, "strip depth %d is negative", strip)
		}
		return StripPrefix(strip), nil
	case ModeFlatten, "":
		if strip != 0 {
			return PathMode{}, errors.Newf(errors.ErrInvalidInput, "flatten mode does not take a strip depth (got %d)", strip)
		}
		return Flatten(), nil
	default:
		return PathMode{}, errors.Newf(errors.ErrInvalidInput, "unknown path mode %q", kind)
	}
}

func (m PathMode) String() string {
	if m.Kind == ModeStripPrefix {
		return fmt.Sprintf("strip(%d)", m.Strip)
	}
	return string(ModeFlatten)
}

// CopyRule copies every file matched by Sources into Dest according to Mode
type CopyRule struct {
	Sources []string
	Dest    string
	Mode    PathMode
}

// Validate checks the rule shape; patterns themselves are checked at expansion
func (r CopyRule) Validate() error {
	if len(r.Sources) == 0 {
		return errors.New(errors.ErrInvalidInput, "copy rule has no source patterns").
			WithDetail("dest", r.Dest)
	}

	dest := path.Clean(r.Dest)
	if strings.TrimSpace(r.Dest) == "" {
		return errors.New(errors.ErrInvalidInput, "copy rule has no destination")
	}
	if path.IsAbs(dest) || dest == ".." || strings.HasPrefix(dest, "../") {
		return errors.Newf(errors.ErrInvalidInput, "destination %s must stay inside the project root", r.Dest).
			WithDetail("dest", r.Dest)
	}

	switch r.Mode.Kind {
	case ModeStripPrefix:
		if r.Mode.Strip < 0 {
			return errors.Newf(errors.ErrInvalidInput, "strip depth %d is negative", r.Mode.Strip)
		}
	case ModeFlatten:
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown path mode %q", r.Mode.Kind)
	}

	return nil
}

// Destination maps a root-relative, slash-separated source path to its target
func (r CopyRule) Destination(source string) string {
	dest := path.Clean(r.Dest)
	segments := strings.Split(path.Clean(source), "/")
	base := segments[len(segments)-1]

	if r.Mode.Kind != ModeStripPrefix {
		return path.Join(dest, base)
	}

	n := r.Mode.Strip
	if n >= len(segments) {
		return path.Join(dest, base)
	}

	return path.Join(append([]string{dest}, segments[n:]...)...)
}
