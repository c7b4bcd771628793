// cmd/config.go
package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultExtensions are the file extensions scanned in directory mode.
var defaultExtensions = []string{"job", "xml"}

// Config is the optional on-disk configuration. Flags take precedence over
// values read from the file.
type Config struct {
	ScanExtensions []string `yaml:"scan_extensions"`
	Debug          bool     `yaml:"debug"`
}

func (c Config) extensions() []string {
	if len(c.ScanExtensions) == 0 {
		return defaultExtensions
	}
	return c.ScanExtensions
}

// loadConfig reads the config file at path, or $HOME/.jobparser.yaml when
// path is empty. A missing or unreadable file yields the zero config; the
// tool must work with no configuration at all.
func loadConfig(path string) Config {
	var cfg Config

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg
		}
		path = filepath.Join(homeDir, ".jobparser.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		Debug("ignoring malformed config %s: %v", path, err)
		return Config{}
	}
	Debug("loaded config from %s", path)
	return cfg
}
