package config

import (
	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/arthur-debert/assetcp/pkg/rules"
	"github.com/arthur-debert/assetcp/pkg/tasks"
)

// Graph builds the task graph of the selected variant
func (c *Config) Graph() (*tasks.Graph, error) {
	variant := c.Selected()
	g := tasks.NewGraph()

	for _, tc := range variant.Tasks {
		task := tasks.Task{
			Name:        tc.Name,
			Description: tc.Description,
			Series:      tc.Series,
		}

		for i, rc := range tc.Rules {
			rule, err := rc.CopyRule()
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "variant %s task %s rule %d", c.Variant, tc.Name, i).
					WithDetail("task", tc.Name)
			}
			task.Rules = append(task.Rules, rule)
		}

		if err := g.Add(task); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "variant %s", c.Variant)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "variant %s", c.Variant)
	}

	return g, nil
}

// CopyRule converts the configuration form into a rules.CopyRule
func (rc RuleConfig) CopyRule() (rules.CopyRule, error) {
	mode, err := rules.ParseMode(rc.Mode, rc.Strip)
	if err != nil {
		return rules.CopyRule{}, err
	}
	return rules.CopyRule{Sources: rc.Sources, Dest: rc.Dest, Mode: mode}, nil
}
