package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/rules.toml
var defaultRules []byte

// DefaultRulesContent returns the embedded rule tables as shipped
func DefaultRulesContent() string {
	return string(defaultRules)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
