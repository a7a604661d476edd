package rules

import (
	"github.com/arthur-debert/assetcp/pkg/glob"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/spf13/afero"
)

// Match is one source file paired with the destination a rule gives it
type Match struct {
	Source string
	Dest   string
}

// Resolve expands the rule's patterns against fsys and computes destinations.
// A rule whose patterns match nothing returns no matches and no error.
func Resolve(fsys afero.Fs, rule CopyRule) ([]Match, error) {
	logger := logging.GetLogger("rules.resolve")

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	files, err := glob.ExpandAll(fsys, rule.Sources)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(files))
	for _, f := range files {
		m := Match{Source: f, Dest: rule.Destination(f)}
		logger.Trace().
			Str("source", m.Source).
			Str("dest", m.Dest).
			Str("mode", rule.Mode.String()).
			Msg("Resolved copy")
		matches = append(matches, m)
	}

	logger.Debug().
		Strs("patterns", rule.Sources).
		Int("matches", len(matches)).
		Msg("Resolved rule")

	return matches, nil
}
