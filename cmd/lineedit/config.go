package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config is the file form of the REPL settings. Zero values mean "use the
// default", except PushEmpty, where nil does.
type config struct {
	Prefix      string   `toml:"prefix" yaml:"prefix"`
	HistorySize int      `toml:"history_size" yaml:"history_size"`
	PushEmpty   *bool    `toml:"push_empty" yaml:"push_empty"`
	ExitCommand *string  `toml:"exit_command" yaml:"exit_command"`
	History     []string `toml:"history" yaml:"history"`
	LogFile     string   `toml:"log_file" yaml:"log_file"`
}

var errUnknownFormat = errors.New("unknown config format")

// loadConfig reads a TOML or YAML file, chosen by extension. Unknown keys are
// rejected.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(ext string, data []byte) (*config, error) {
	var cfg config
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to io.EOF
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) != 0 {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}
	if cfg.HistorySize < 0 {
		return nil, fmt.Errorf("history_size must not be negative: %d", cfg.HistorySize)
	}
	return &cfg, nil
}
