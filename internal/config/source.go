// README: Key/value settings sources (environment, TOML file, static map) and their chaining.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Source is a read-only key/value settings source.
type Source interface {
	Lookup(key string) (string, bool)
}

// EnvSource reads settings from the process environment.
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapSource serves settings from a fixed map.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Chain returns the first non-empty value found across sources, in order.
type Chain []Source

func (c Chain) Lookup(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FileSource serves the [settings] table of a TOML file:
//
//	[settings]
//	NVIDIA_API_KEY = "nvapi-..."
//	TAVILY_API_KEY = "tvly-..."
type FileSource struct {
	settings map[string]string
}

type fileSettings struct {
	Settings map[string]string `toml:"settings"`
}

// NewFileSource reads path once. A missing file yields an empty source; a file
// that cannot be parsed is an error.
func NewFileSource(path string) (*FileSource, error) {
	fs := &FileSource{settings: map[string]string{}}
	if path == "" {
		return fs, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed fileSettings
	if _, err := toml.Decode(string(data), &parsed); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if parsed.Settings != nil {
		fs.settings = parsed.Settings
	}
	return fs, nil
}

func (f *FileSource) Lookup(key string) (string, bool) {
	v, ok := f.settings[key]
	return v, ok
}

// DefaultSource layers the environment over the optional settings file named by
// TRIPSMITH_CONFIG_FILE (default "tripsmith.toml").
func DefaultSource() (Source, error) {
	path := os.Getenv("TRIPSMITH_CONFIG_FILE")
	if path == "" {
		path = "tripsmith.toml"
	}
	file, err := NewFileSource(path)
	if err != nil {
		return nil, err
	}
	return Chain{EnvSource{}, file}, nil
}
