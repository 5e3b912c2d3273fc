// Package config loads optional settings of the annotator from a YAML file.
//
// Example:
//
//	input: types.go
//	key: json
//	guards:
//	  - defer
//	  - go
//	summary: [created, extended, guarded]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/jsontag/internal/annotator"
)

// DefaultFile is looked for in the working directory when no file is set explicitly.
const DefaultFile = ".jsontag.yaml"

// DefaultInput is the file rewritten when no input is given.
const DefaultInput = "types.go"

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config of the annotator.
type Config struct {
	Input  string   `yaml:"input"`
	Key    string   `yaml:"key"`
	Guards []string `yaml:"guards"`

	// Summary lists outcomes printed with --summary. Changed lines are printed when empty.
	Summary []annotator.Outcome `yaml:"summary"`
}

// Default returns a config reproducing the annotator defaults.
func Default() *Config {
	return &Config{
		Input: DefaultInput,
		Key:   annotator.DefaultKey,
	}
}

// Load reads the config from path. Empty path means DefaultFile, which may be absent.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes config from r. Missing values get defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Key == "" {
		cfg.Key = annotator.DefaultKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

// Validate checks the key and guards are usable.
func (c *Config) Validate() error {
	if c.Key == "" {
		return errors.New("empty key")
	}
	if !keyPattern.MatchString(c.Key) {
		return fmt.Errorf("invalid key %q: must be an identifier", c.Key)
	}

	for i, g := range c.Guards {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("empty guard at position %d", i)
		}
	}

	return nil
}

// Options turns config into annotator options.
func (c *Config) Options() []annotator.Option {
	return []annotator.Option{
		annotator.WithKey(c.Key),
		annotator.WithGuards(c.Guards...),
	}
}
