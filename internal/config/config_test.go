package config

// Notes:
// - Name-resolution tests chdir and set XDG_CONFIG_HOME/HOME, so they do not
//   run in parallel.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", *cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty", "", 10, false},
		{"at limit", "1234567890", 10, false},
		{"over limit", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("f", tt.value, tt.max)
			if tt.wantErr != (err != nil) {
				t.Fatalf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		wantSub string
	}{
		{
			name: "valid",
			cfg: Config{
				Document:     DocumentConfig{DefaultAuthor: "Ada Lovelace"},
				Bibliography: BibliographyConfig{File: "refs.bib", KeepSigil: true},
				Template:     TemplateConfig{Name: "article"},
				Workers:      4,
				Watch:        WatchConfig{Debounce: "150ms"},
			},
		},
		{
			name:    "author too long",
			cfg:     Config{Document: DocumentConfig{DefaultAuthor: strings.Repeat("a", MaxAuthorLength+1)}},
			wantErr: ErrFieldTooLong,
			wantSub: "document.defaultAuthor",
		},
		{
			name:    "template name too long",
			cfg:     Config{Template: TemplateConfig{Name: strings.Repeat("t", MaxTemplateNameLength+1)}},
			wantErr: ErrFieldTooLong,
			wantSub: "template.name",
		},
		{
			name:    "template name is a path",
			cfg:     Config{Template: TemplateConfig{Name: "dir/custom"}},
			wantErr: ErrInvalidValue,
			wantSub: "template.assetPath",
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -1},
			wantErr: ErrInvalidValue,
			wantSub: "workers",
		},
		{
			name:    "too many workers",
			cfg:     Config{Workers: MaxWorkers + 1},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "bad debounce",
			cfg:     Config{Watch: WatchConfig{Debounce: "soon"}},
			wantErr: ErrInvalidValue,
			wantSub: "watch.debounce",
		},
		{
			name:    "non-positive debounce",
			cfg:     Config{Watch: WatchConfig{Debounce: "0s"}},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantSub != "" && !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestConfig_DebounceDuration(t *testing.T) {
	t.Parallel()

	fallback := 100 * time.Millisecond
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", fallback},
		{"250ms", 250 * time.Millisecond},
		{"garbage", fallback},
		{"-1s", fallback},
	}

	for _, tt := range tests {
		cfg := Config{Watch: WatchConfig{Debounce: tt.value}}
		if got := cfg.DebounceDuration(fallback); got != tt.want {
			t.Errorf("DebounceDuration(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File and name resolution
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("file path loads every section", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "full.yaml", `document:
  defaultAuthor: "Grace Hopper"
bibliography:
  file: library.bib
  keepSigil: true
template:
  name: article
output:
  defaultDir: out
watch:
  debounce: 300ms
workers: 2
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			Document:     DocumentConfig{DefaultAuthor: "Grace Hopper"},
			Bibliography: BibliographyConfig{File: "library.bib", KeepSigil: true},
			Template:     TemplateConfig{Name: "article"},
			Output:       OutputConfig{DefaultDir: "out"},
			Watch:        WatchConfig{Debounce: "300ms"},
			Workers:      2,
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "document: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "document:\n  author: x\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "neg.yaml", "workers: -3\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name resolves yml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "local.yml", "bibliography:\n  file: here.bib\n")
		chdir(t, dir)

		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Bibliography.File != "here.bib" {
			t.Errorf("Bibliography.File = %q, want here.bib", cfg.Bibliography.File)
		}
	})

	t.Run("name resolves in user config dir", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		t.Setenv("HOME", home)
		userDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("no user config dir: %v", err)
		}
		appDir := filepath.Join(userDir, AppDir)
		if err := os.MkdirAll(appDir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		writeConfig(t, appDir, "shared.yaml", "document:\n  defaultAuthor: Shared\n")
		chdir(t, t.TempDir())

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.DefaultAuthor != "Shared" {
			t.Errorf("DefaultAuthor = %q, want Shared", cfg.Document.DefaultAuthor)
		}
	})

	t.Run("missing name lists searched paths", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "absent.yaml") || !strings.Contains(err.Error(), "absent.yml") {
			t.Errorf("error should list tried paths: %v", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("work")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the local candidates", paths)
	}
	if paths[0] != "work.yaml" || paths[1] != "work.yml" {
		t.Errorf("local candidates = %v", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDir) {
			t.Errorf("user candidate %q not under %s", p, AppDir)
		}
	}
}
