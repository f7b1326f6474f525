package textops

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the conversion service.
type Config struct {
	// OutputDir is where html_to_markdown writes its .md files (default: ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MaxInputSize is the maximum accepted payload size in bytes (default: 10 MB).
	MaxInputSize int `json:"max_input_size" yaml:"max_input_size"`

	// PreviewLen is the length in runes of the content preview embedded in
	// the save confirmation (default: 200).
	PreviewLen int `json:"preview_len" yaml:"preview_len"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.MaxInputSize <= 0 {
		c.MaxInputSize = 10 * 1024 * 1024
	}
	if c.PreviewLen <= 0 {
		c.PreviewLen = 200
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
