// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management built on
//              TOBJ documents with TOML, YAML and JSON fallbacks. Features
//              include automatic file discovery, environment variable
//              injection, validation, hot-reloading and type-safe access.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with TOBJ/TOML/YAML/JSON support

/*
Package config provides configuration management built on TOBJ documents.

Package: config
Title: Configuration Management
Description: Provides configuration management for applications that keep
             their settings in TOBJ notation, with TOML, YAML and JSON
             fallbacks through the conversion bridges, environment variable
             injection, hot-reloading, validation and type-safe access.
Version: v0.1.0
Created: 2026-07-18
Modified: 2026-07-18

Change History:
- 2026-07-18 v0.1.0: Initial implementation with TOBJ/TOML/YAML/JSON support

Key Features:
  • Native TOBJ notation with TOML, YAML and JSON fallbacks
  • Automatic format detection from file extensions
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Struct binding via "config" field tags
  • Hot-reloading with change notification callbacks
  • Automatic configuration file discovery
  • Thread-safe concurrent access

Configuration data is held as a TOBJ document, so dotted access keys
follow the document structure: the first segment names a top-level
object, middle segments name nested children and the last segment names
a property. "database.host" reads the host property of the database
object. Single-word keys cannot resolve against a document, because the
top level holds objects only; they remain reachable through the
environment variable lookup the getters perform first.

# Basic Configuration Loading

Load and access configuration values:

	# config.tobj
	*database
	  > host localhost
	  > port 5432
	  > ssl true

	*server
	  > timeout "30s"
	  > workers 4
	  > features
	  - auth
	  - logging

	cfg, err := config.Load("config.tobj")
	if err != nil {
		return err
	}

	host := cfg.GetString("database.host", "localhost")
	port := cfg.GetInt("database.port", 5432)
	timeout := cfg.GetDuration("server.timeout", 30*time.Second)
	features := cfg.GetStringSlice("server.features")

# Advanced Configuration Options

Load with custom options, defaults and hot-reloading:

	cfg, err := config.LoadWithOptions("app.tobj", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "MYAPP",
		Defaults: map[string]interface{}{
			"server": map[string]interface{}{
				"port":    8080,
				"timeout": "30s",
			},
		},
		Watch: true,
	})

Defaults are merged per property: values present in the file win, and a
valueless property ("> cert" with no value) counts as missing and is
filled in.

# Environment Variable Integration

Configuration values are overridden by environment variables following
a consistent naming convention:

	export MYAPP_DATABASE_HOST="prod-db.example.com"
	export MYAPP_DATABASE_PORT="3306"

	cfg, _ := config.LoadWithOptions("config.tobj", config.LoadOptions{
		EnvPrefix: "MYAPP",
	})

	host := cfg.GetString("database.host") // "prod-db.example.com"
	port := cfg.GetInt("database.port")    // 3306

A configuration can also be built entirely from the environment:

	cfg := config.LoadFromEnv("MYAPP")

# Configuration Validation

Validate configuration structure and constraints:

	rules := config.ValidationRules{
		"database.host": {
			Required: true,
			Type:     "string",
			Pattern:  `^[a-zA-Z0-9.-]+$`,
		},
		"database.port": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      65535,
		},
		"server.timeout": {
			Type:    "duration",
			Default: "30s",
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		for _, msg := range result.Errors {
			log.Error("config validation failed", log.Fields{"error": msg})
		}
	}

# Struct Binding

Bind a configuration section to a struct:

	type ServerConfig struct {
		Host    string        `config:"host" validate:"required"`
		Port    int           `config:"port"`
		Timeout time.Duration `config:"timeout"`
		Tags    []string      `config:"tags"`
	}

	var server ServerConfig
	if err := cfg.BindToStruct("server", &server); err != nil {
		return err
	}

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading:

	cfg, err := config.LoadWithWatch("config.tobj")
	if err != nil {
		return err
	}
	defer cfg.StopWatching()

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		if oldCfg.GetString("database.host") != newCfg.GetString("database.host") {
			// Handle database reconnection
		}
	})

Handlers receive detached snapshots, so reading the old and new
configuration inside a handler needs no extra locking.

# Multi-Format Support

The package detects the format from the file extension; unknown
extensions fall back to TOBJ notation:

	cfg1, _ := config.Load("config.tobj")
	cfg2, _ := config.Load("config.toml")
	cfg3, _ := config.Load("config.yaml")
	cfg4, _ := config.Load("config.json")

	cfg5, _ := config.LoadFromString("*server > port 8080", config.FormatTOBJ)

Whatever the source format, the loaded configuration is a TOBJ document:
Document returns a snapshot and Text renders the canonical notation,
which makes it easy to migrate a TOML or YAML file to TOBJ.

# Automatic File Discovery

Discover configuration files across standard locations:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", "/etc/myapp"},
		Filenames: []string{"myapp", "config"},
		Required:  true,
	})

The default search order tries the native ".tobj" extension first, then
".toml", ".yaml", ".yml" and ".json".

# Convenience Methods

Short aliases for the typed getters:

	host := cfg.S("database.host", "localhost")
	port := cfg.I("database.port", 5432)
	debug := cfg.B("app.debug", false)
	timeout := cfg.D("server.timeout", 30*time.Second)

# Thread Safety Guarantees

All Config methods are safe for concurrent use. Getters take a read
lock, Set and Validate take the write lock, and the file watcher swaps
the underlying document atomically, so readers never observe a half
reloaded configuration.
*/
package config
