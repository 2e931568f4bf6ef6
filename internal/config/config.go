// Package config loads and validates site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-monoweb/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidSubdir   = errors.New("invalid asset subdirectory")
	ErrInvalidPort     = errors.New("invalid server port")
)

// Config holds all configuration for site generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Static   StaticConfig   `yaml:"static"`
	Template TemplateConfig `yaml:"template"`
	Server   ServerConfig   `yaml:"server"`
}

// InputConfig defines the source document.
type InputConfig struct {
	File string `yaml:"file"` // Markdown document with optional front matter
}

// OutputConfig defines the output directory layout.
type OutputConfig struct {
	Dir         string `yaml:"dir"`         // output root; destroyed on every build
	AssetSubdir string `yaml:"assetSubdir"` // subdirectory receiving static assets
}

// StaticConfig defines the static assets source tree.
type StaticConfig struct {
	Dir string `yaml:"dir"` // may be absent; build continues without assets
}

// TemplateConfig defines the page skeleton source.
type TemplateConfig struct {
	File string `yaml:"file"` // empty = embedded monospace skeleton
}

// ServerConfig defines the development server.
type ServerConfig struct {
	Port int `yaml:"port"` // default 8080
}

// DefaultServerPort is used when no port is configured.
const DefaultServerPort = 8080

// DefaultConfig returns the conventional layout of the reference site.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{File: "index.md"},
		Output:   OutputConfig{Dir: "docs", AssetSubdir: "src"},
		Static:   StaticConfig{Dir: "static"},
		Template: TemplateConfig{File: ""},
		Server:   ServerConfig{Port: DefaultServerPort},
	}
}

// Validate checks that configured values are usable.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if sub := c.Output.AssetSubdir; sub != "" {
		if strings.ContainsAny(sub, "/\\") || sub == ".." || sub == "." {
			return fmt.Errorf("%w: %q must be a plain directory name", ErrInvalidSubdir, sub)
		}
	}
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		return fmt.Errorf("%w: %d (must be between 1 and 65535)", ErrInvalidPort, c.Server.Port)
	}
	return nil
}

// FillDefaults replaces empty fields with DefaultConfig values.
func (c *Config) FillDefaults() {
	d := DefaultConfig()
	if c.Input.File == "" {
		c.Input.File = d.Input.File
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Output.AssetSubdir == "" {
		c.Output.AssetSubdir = d.Output.AssetSubdir
	}
	if c.Static.Dir == "" {
		c.Static.Dir = d.Static.Dir
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.FillDefaults()
	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-monoweb/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-monoweb", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
