// Package yaml loads the optional scrape2tex configuration file.
package yaml

import (
	"fmt"
	"os"
	"time"

	goyaml "github.com/goccy/go-yaml"
	"github.com/ourgreenway/scrape2tex"
)

// MaxConfigSize limits the configuration file to 1MB.
const MaxConfigSize = 1 << 20

// Config holds settings read from a YAML file. Empty fields mean "not set";
// callers fall back to flags or defaults for them.
type Config struct {
	Header        string   `yaml:"header"`
	Images        string   `yaml:"images"`
	Out           string   `yaml:"out"`
	Timeout       Duration `yaml:"timeout"`
	DocumentClass string   `yaml:"documentClass"`
	UserAgent     string   `yaml:"userAgent"`
}

// Duration is a time.Duration written as a Go duration string ("20s").
type Duration time.Duration

// UnmarshalYAML implements goyaml.BytesUnmarshaler.
func (d *Duration) UnmarshalYAML(data []byte) error {
	var s string
	if err := goyaml.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", s)
	}
	*d = Duration(v)
	return nil
}

// LoadConfig reads and strictly parses the file at path. Unknown keys are
// rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "config path required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "reading config: %v", err)
	}
	if info.Size() > MaxConfigSize {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "config %s exceeds %d bytes", path, MaxConfigSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "reading config: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig strictly parses data. Empty input yields an empty Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if len(data) > MaxConfigSize {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "config exceeds %d bytes", MaxConfigSize)
	}
	if len(data) == 0 {
		return &cfg, nil
	}
	if err := goyaml.UnmarshalWithOptions(data, &cfg, goyaml.Strict()); err != nil {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "parsing config: %v", err)
	}
	return &cfg, nil
}
