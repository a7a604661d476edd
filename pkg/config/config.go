package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/arthur-debert/assetcp/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full set of rule tables plus the selected variant
type Config struct {
	Variant  string                   `koanf:"variant" toml:"variant" yaml:"variant"`
	Variants map[string]VariantConfig `koanf:"variants" toml:"variants" yaml:"variants"`
}

// VariantConfig is one complete task graph
type VariantConfig struct {
	Description string       `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	Tasks       []TaskConfig `koanf:"tasks" toml:"tasks" yaml:"tasks"`
}

// TaskConfig declares a task: either rules or a series of task names
type TaskConfig struct {
	Name        string       `koanf:"name" toml:"name" yaml:"name"`
	Description string       `koanf:"description" toml:"description,omitempty" yaml:"description,omitempty"`
	Series      []string     `koanf:"series" toml:"series,omitempty" yaml:"series,omitempty"`
	Rules       []RuleConfig `koanf:"rules" toml:"rules,omitempty" yaml:"rules,omitempty"`
}

// RuleConfig is the configuration form of rules.CopyRule
type RuleConfig struct {
	Sources []string `koanf:"sources" toml:"sources" yaml:"sources"`
	Dest    string   `koanf:"dest" toml:"dest" yaml:"dest"`
	Mode    string   `koanf:"mode" toml:"mode" yaml:"mode"`
	Strip   int      `koanf:"strip" toml:"strip,omitempty" yaml:"strip,omitempty"`
}

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// ConfigFile is layered over the embedded tables when set
	ConfigFile string
	// Variant overrides the variant named in the configuration
	Variant string
}

// Load reads the embedded rule tables and the optional config file
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultRules}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded rule tables")
	}

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}

		parser, err := parserFor(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(opts.ConfigFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded config file")
	}

	if opts.Variant != "" {
		if err := k.Load(confmap.Provider(map[string]interface{}{"variant": opts.Variant}, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to apply variant override")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode rule tables")
	}

	if _, ok := cfg.Variants[cfg.Variant]; !ok {
		return nil, errors.Newf(errors.ErrConfigValid, "unknown variant %q (available: %s)",
			cfg.Variant, strings.Join(cfg.VariantNames(), ", ")).
			WithDetail("variant", cfg.Variant)
	}

	logger.Debug().
		Str("variant", cfg.Variant).
		Int("tasks", len(cfg.Variants[cfg.Variant].Tasks)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// VariantNames lists the available variants, sorted
func (c *Config) VariantNames() []string {
	names := make([]string, 0, len(c.Variants))
	for name := range c.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Selected returns the active variant
func (c *Config) Selected() VariantConfig {
	return c.Variants[c.Variant]
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q (use .toml or .yaml)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
