package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-org2typst/internal/config"
)

const envPrefix = "ORG2TYPST_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath   string // ORG2TYPST_CONFIG
	Author       string // ORG2TYPST_AUTHOR
	Bibliography string // ORG2TYPST_BIBLIOGRAPHY
	Template     string // ORG2TYPST_TEMPLATE
	AssetPath    string // ORG2TYPST_ASSET_PATH
	Workers      int    // ORG2TYPST_WORKERS, ignored unless a positive integer
}

// knownEnvVars lists valid ORG2TYPST_* environment variables.
var knownEnvVars = map[string]bool{
	"ORG2TYPST_CONFIG":       true,
	"ORG2TYPST_AUTHOR":       true,
	"ORG2TYPST_BIBLIOGRAPHY": true,
	"ORG2TYPST_TEMPLATE":     true,
	"ORG2TYPST_ASSET_PATH":   true,
	"ORG2TYPST_WORKERS":      true,
}

// loadEnvConfig reads the ORG2TYPST_* variables through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("ORG2TYPST_CONFIG"),
		Author:       getenv("ORG2TYPST_AUTHOR"),
		Bibliography: getenv("ORG2TYPST_BIBLIOGRAPHY"),
		Template:     getenv("ORG2TYPST_TEMPLATE"),
		AssetPath:    getenv("ORG2TYPST_ASSET_PATH"),
	}

	if workers := getenv("ORG2TYPST_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized ORG2TYPST_*
// variable, in name order.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig copies set environment values over cfg. Called after the
// config file is loaded and before flags are merged, so flags > env > file.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Author != "" {
		cfg.Document.DefaultAuthor = env.Author
	}
	if env.Bibliography != "" {
		cfg.Bibliography.File = env.Bibliography
	}
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if env.AssetPath != "" {
		cfg.Template.AssetPath = env.AssetPath
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
