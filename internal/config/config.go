// Package config loads YAML configuration for the org2typst command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-org2typst/internal/fileutil"
	"github.com/alnah/go-org2typst/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under os.UserConfigDir searched for named configs.
const AppDir = "go-org2typst"

// Field length limits.
const (
	MaxAuthorLength       = 200
	MaxPathLength         = 4096
	MaxTemplateNameLength = 100
	MaxWorkers            = 256
)

// Config holds the settings that shape a conversion run.
type Config struct {
	Document     DocumentConfig     `yaml:"document"`
	Bibliography BibliographyConfig `yaml:"bibliography"`
	Template     TemplateConfig     `yaml:"template"`
	Output       OutputConfig       `yaml:"output"`
	Watch        WatchConfig        `yaml:"watch"`
	Workers      int                `yaml:"workers"` // 0 = GOMAXPROCS
}

// DocumentConfig defines per-document fallbacks.
type DocumentConfig struct {
	DefaultAuthor string `yaml:"defaultAuthor"` // used when #+author: is absent
}

// BibliographyConfig defines the trailing #bibliography directive.
type BibliographyConfig struct {
	File      string `yaml:"file"`
	KeepSigil bool   `yaml:"keepSigil"` // render [cite:@k] as @k
}

// TemplateConfig selects the Typst template.
type TemplateConfig struct {
	Name      string `yaml:"name"`      // templates/{name}.typ, empty = "project"
	AssetPath string `yaml:"assetPath"` // custom asset directory, empty = embedded only
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// WatchConfig tunes watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // Go duration, e.g. "200ms"
}

// DebounceDuration parses Watch.Debounce, returning fallback when unset.
func (c *Config) DebounceDuration(fallback time.Duration) time.Duration {
	if c.Watch.Debounce == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Validate checks field lengths and ranges. LoadConfig calls it; callers
// building a Config by hand should too.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"document.defaultAuthor", c.Document.DefaultAuthor, MaxAuthorLength},
		{"bibliography.file", c.Bibliography.File, MaxPathLength},
		{"template.name", c.Template.Name, MaxTemplateNameLength},
		{"template.assetPath", c.Template.AssetPath, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if fileutil.IsFilePath(c.Template.Name) {
		return fmt.Errorf("%w: template.name %q must be a name, not a path (use template.assetPath)", ErrInvalidValue, c.Template.Name)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("%w: watch.debounce: %v", ErrInvalidValue, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: watch.debounce must be positive, got %s", ErrInvalidValue, d)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that defers every choice to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched as {name}.yaml then {name}.yml in the current
// directory, then in {UserConfigDir}/go-org2typst/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
