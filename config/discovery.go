// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic configuration file discovery across
//              multiple paths and formats for flexible deployment scenarios.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjfilex "github.com/tobj-format/tobj-go/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.tobj, .toml, .yaml, ...)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns sensible default options for config discovery
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config", "/etc", "/usr/local/etc"},
		Filenames:  []string{"config", "app"},
		Extensions: []string{".tobj", ".toml", ".yaml", ".yml", ".json"},
		EnvPrefix:  "",
		Required:   true,
	}
}

// Discover automatically discovers and loads configuration files
func Discover(options DiscoveryOptions) (*Config, error) {
	// Use defaults if options are empty
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".tobj", ".toml", ".yaml", ".yml", ".json"}
	}

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := tobjfilex.Join(path, filename+ext)

				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					loadOptions := LoadOptions{
						Format:    FormatAuto,
						EnvPrefix: options.EnvPrefix,
						Watch:     false,
					}

					config, err := LoadWithOptions(configPath, loadOptions)
					if err != nil {
						// File exists but could not be loaded - this is an error
						return nil, tobjerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
							WithCode(tobjerror.CodeConfigError).
							WithOperation("config.Discover").
							WithDetail("configPath", configPath)
					}

					return config, nil
				}
			}
		}
	}

	// No configuration file found
	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, tobjerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(tobjerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	// Create empty configuration if not required
	return &Config{
		doc:       tobjdocument.New(),
		format:    FormatTOBJ,
		envPrefix: options.EnvPrefix,
		watchers:  make([]ChangeHandler, 0),
		watching:  false,
	}, nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := tobjfilex.Join(path, filename+ext)

				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
			}
		}
	}

	return "", tobjerror.New("configuration file not found").
		WithCode(tobjerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns a list of all possible configuration file paths
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, tobjfilex.Join(path, filename+ext))
			}
		}
	}

	return paths
}

// LoadWithWatch loads configuration with file watching enabled
func LoadWithWatch(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
		Watch:  true,
	})
}

// LoadFromEnv loads configuration entirely from environment variables.
// MYAPP_DATABASE_HOST becomes database.host. Variables whose key maps
// to a single segment carry no object name and are skipped here; they
// stay reachable through the environment lookup the getters perform at
// access time.
func LoadFromEnv(envPrefix string) *Config {
	doc := tobjdocument.New()

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := parts[0], parts[1]

		if envPrefix != "" {
			prefix := strings.ToUpper(envPrefix) + "_"
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}

		// MYAPP_DATABASE_HOST -> database.host
		configKey := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		segments := strings.Split(configKey, ".")
		if len(segments) < 2 {
			continue
		}

		node := doc.Ensure(segments[:len(segments)-1]...)
		node.SetProperty(segments[len(segments)-1], parseEnvValue(value))
	}

	return &Config{
		doc:       doc,
		format:    FormatTOBJ,
		envPrefix: envPrefix,
		watchers:  make([]ChangeHandler, 0),
		watching:  false,
	}
}

// parseEnvValue parses an environment variable value into a typed document value
func parseEnvValue(value string) tobjdocument.Value {
	if value == "true" || value == "false" {
		return tobjdocument.Bool(value == "true")
	}

	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		return tobjdocument.Int(intVal)
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return tobjdocument.Float(floatVal)
	}

	return tobjdocument.String(value)
}
