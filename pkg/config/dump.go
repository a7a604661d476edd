package config

import (
	"strings"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dump serializes the selected variant as a standalone config file
// that Load accepts through LoadOptions.ConfigFile
func (c *Config) Dump(format string) ([]byte, error) {
	out := Config{
		Variant:  c.Variant,
		Variants: map[string]VariantConfig{c.Variant: c.Selected()},
	}

	switch strings.ToLower(format) {
	case "toml", "":
		data, err := toml.Marshal(out)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode toml")
		}
		return data, nil
	case "yaml", "yml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
		}
		return data, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown dump format %q", format)
	}
}
