// Package config loads the assetcp rule tables.
//
// The tables ship embedded as TOML and hold one task graph per variant. A bare
// run reads nothing else. An explicit config file (TOML or YAML) may be layered
// on top to change the selected variant or replace a variant's task list.
package config
