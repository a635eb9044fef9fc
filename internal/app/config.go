package app

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"go.ytsaurus.tech/library/go/core/xerrors"
	"go.ytsaurus.tech/yt/go/yson"
)

const (
	FormatText   = "text"
	FormatBinary = "binary"
)

// Config is read from the file passed with --config, yaml or toml
// depending on the file extension.
type Config struct {
	// LogLevel enables logging to stderr; empty disables logging.
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// Seed makes shuffles reproducible. If not set, the global math/rand source is used.
	Seed *int64 `yaml:"seed" toml:"seed"`

	// Format of the output, either "text" or "binary" YSON.
	Format string `yaml:"format" toml:"format"`
}

func DefaultConfig() Config {
	return Config{Format: FormatText}
}

// LoadConfig reads the config from path. Empty path gives DefaultConfig.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, xerrors.Errorf("failed to read config: %w", err)
	}
	unmarshal := yaml.Unmarshal
	if filepath.Ext(path) == ".toml" {
		unmarshal = toml.Unmarshal
	}
	if err := unmarshal(data, &config); err != nil {
		return config, xerrors.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "":
		c.Format = FormatText
	case FormatText, FormatBinary:
	default:
		return xerrors.Errorf("unknown output format %q, expected %q or %q", c.Format, FormatText, FormatBinary)
	}
	return nil
}

func (c *Config) YSONFormat() yson.Format {
	if c.Format == FormatBinary {
		return yson.FormatBinary
	}
	return yson.FormatText
}
