package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"lspwire/src/internal/common"
	"lspwire/src/internal/errors"
)

// Config maps editor filetypes to the settings sent to their language servers
type Config struct {
	Filetypes map[string]*FiletypeConfig `yaml:"filetypes"`
}

// FiletypeConfig contains configuration for a single filetype
type FiletypeConfig struct {
	LanguageID string   `yaml:"language_id,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	// WorkspaceConfig is kept as a raw YAML tree and only converted to JSON
	// when a didChangeConfiguration message is built. A zero Kind means the
	// key was absent; an explicit null decodes to a !!null scalar.
	WorkspaceConfig yaml.Node `yaml:"workspace_config,omitempty"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(path, fmt.Errorf("failed to read config file: %w", err))
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, errors.NewConfigError(path, err)
	}
	return config, nil
}

// ParseConfig parses and validates YAML configuration data
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Filetypes == nil {
		return fmt.Errorf("filetypes configuration is required")
	}

	for filetype, ft := range config.Filetypes {
		if strings.TrimSpace(filetype) == "" {
			return fmt.Errorf("filetype names must not be empty")
		}
		if ft == nil {
			continue
		}
		for _, ext := range ft.Extensions {
			if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
				return fmt.Errorf("extension %q for filetype %s must start with '.'", ext, filetype)
			}
		}
	}

	return nil
}

// WorkspaceConfig returns the raw workspace_config registered for filetype.
// A key present with a null value is still reported as registered.
func (c *Config) WorkspaceConfig(filetype string) (any, bool) {
	if c == nil {
		return nil, false
	}
	ft, ok := c.Filetypes[filetype]
	if !ok || ft == nil || ft.WorkspaceConfig.Kind == 0 {
		return nil, false
	}
	return &ft.WorkspaceConfig, true
}

// LanguageID returns the LSP language identifier for filetype, defaulting
// to the filetype name itself
func (c *Config) LanguageID(filetype string) string {
	if c != nil {
		if ft, ok := c.Filetypes[filetype]; ok && ft != nil && ft.LanguageID != "" {
			return ft.LanguageID
		}
	}
	return filetype
}

// DetectFiletype finds the filetype whose extensions match path
func (c *Config) DetectFiletype(path string) (string, bool) {
	if c == nil {
		return "", false
	}
	name := strings.ToLower(filepath.Base(path))

	filetypes := make([]string, 0, len(c.Filetypes))
	for filetype := range c.Filetypes {
		filetypes = append(filetypes, filetype)
	}
	sort.Strings(filetypes)

	// longest extension wins so ".d.ts" beats ".ts"
	best, bestLen := "", 0
	for _, filetype := range filetypes {
		ft := c.Filetypes[filetype]
		if ft == nil {
			continue
		}
		for _, ext := range ft.Extensions {
			ext = strings.ToLower(ext)
			if strings.HasSuffix(name, ext) && len(ext) > bestLen {
				best, bestLen = filetype, len(ext)
			}
		}
	}
	return best, best != ""
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lspwire", "config.yaml")
}

// LoadOrDefault loads an explicit path, then the default path, then falls
// back to built-in defaults. Only an explicit path that fails to load is an
// error.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		expanded, err := common.ExpandPath(configPath)
		if err != nil {
			return nil, errors.NewConfigError(configPath, err)
		}
		return LoadConfig(expanded)
	}

	defaultPath := GetDefaultConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		loaded, err := LoadConfig(defaultPath)
		if err == nil {
			return loaded, nil
		}
		common.CLILogger.Warn("Ignoring unreadable default config: %v", err)
	}

	common.CLILogger.Debug("Using built-in filetype defaults")
	return GetDefaultConfig(), nil
}

// GetDefaultConfig returns filetype defaults for common language servers.
// None of them carries workspace settings.
func GetDefaultConfig() *Config {
	return &Config{
		Filetypes: map[string]*FiletypeConfig{
			"go": {
				LanguageID: "go",
				Extensions: []string{".go"},
			},
			"python": {
				LanguageID: "python",
				Extensions: []string{".py", ".pyi"},
			},
			"javascript": {
				LanguageID: "javascript",
				Extensions: []string{".js", ".jsx", ".mjs"},
			},
			"typescript": {
				LanguageID: "typescript",
				Extensions: []string{".ts", ".tsx", ".d.ts"},
			},
			"java": {
				LanguageID: "java",
				Extensions: []string{".java"},
			},
			"rust": {
				LanguageID: "rust",
				Extensions: []string{".rs"},
			},
		},
	}
}
