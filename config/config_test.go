// File: config_test.go
// Title: Configuration Management Tests
// Description: Tests for loading, parsing, and accessing configuration
//              data from TOBJ, TOML, YAML and JSON files.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	"github.com/tobj-format/tobj-go/tobj"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOBJ config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.tobj")
		configContent := `# Test configuration
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
  - metrics
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}

		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}

		if ssl := cfg.GetBool("database.ssl"); !ssl {
			t.Errorf("Expected ssl true, got %v", ssl)
		}

		if timeout := cfg.GetDuration("server.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}

		features := cfg.GetStringSlice("server.features")
		expectedFeatures := []string{"auth", "logging", "metrics"}
		if len(features) != len(expectedFeatures) {
			t.Fatalf("Expected %d features, got %d", len(expectedFeatures), len(features))
		}
		for i, feature := range features {
			if feature != expectedFeatures[i] {
				t.Errorf("Expected feature '%s', got '%s'", expectedFeatures[i], feature)
			}
		}
	})

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[database]
host = "localhost"
port = 5432
ssl = true
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}

		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.yaml")
		configContent := `
database:
  host: localhost
  port: 5432
  ssl: true
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}

		if ssl := cfg.GetBool("database.ssl"); !ssl {
			t.Errorf("Expected ssl true, got %v", ssl)
		}
	})

	t.Run("load JSON config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.json")
		configContent := `{"database": {"host": "localhost", "port": 5432}}`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}

		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nonexistent.tobj"))
		if err == nil {
			t.Fatal("Expected error for nonexistent file")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeNotFound) {
			t.Errorf("Expected CodeNotFound, got %v", tobjerror.GetCode(err))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		if err == nil {
			t.Fatal("Expected error for empty path")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeValidationFailed) {
			t.Errorf("Expected CodeValidationFailed, got %v", tobjerror.GetCode(err))
		}
	})

	t.Run("malformed TOBJ", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.tobj")
		if err := os.WriteFile(configPath, []byte("> orphan 1\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := Load(configPath)
		if err == nil {
			t.Fatal("Expected error for malformed config")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeConfigError) {
			t.Errorf("Expected CodeConfigError, got %v", tobjerror.GetCode(err))
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.tobj")
	configContent := `*database
  > host localhost
  > port 5432
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("TOBJCFG_DATABASE_HOST", "production-db")
	os.Setenv("TOBJCFG_DATABASE_PORT", "3306")
	os.Setenv("TOBJCFG_DEBUG", "true")
	defer func() {
		os.Unsetenv("TOBJCFG_DATABASE_HOST")
		os.Unsetenv("TOBJCFG_DATABASE_PORT")
		os.Unsetenv("TOBJCFG_DEBUG")
	}()

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		EnvPrefix: "TOBJCFG",
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Environment variables take precedence over file values
	if host := cfg.GetString("database.host"); host != "production-db" {
		t.Errorf("Expected host 'production-db' from env var, got '%s'", host)
	}

	if port := cfg.GetInt("database.port"); port != 3306 {
		t.Errorf("Expected port 3306 from env var, got %d", port)
	}

	// Single-segment keys resolve through the environment only
	if debug := cfg.GetBool("debug"); !debug {
		t.Error("Expected debug true from env var")
	}
}

func TestDefaults(t *testing.T) {
	t.Run("getter defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.tobj")
		configContent := `*database
  > host localhost
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if port := cfg.GetInt("database.port", 5432); port != 5432 {
			t.Errorf("Expected default port 5432, got %d", port)
		}

		if ssl := cfg.GetBool("database.ssl", true); !ssl {
			t.Errorf("Expected default ssl true, got %v", ssl)
		}

		if timeout := cfg.GetDuration("server.timeout", 30*time.Second); timeout != 30*time.Second {
			t.Errorf("Expected default timeout 30s, got %v", timeout)
		}

		if features := cfg.GetStringSlice("server.features", []string{"auth"}); len(features) != 1 || features[0] != "auth" {
			t.Errorf("Expected default features [auth], got %v", features)
		}
	})

	t.Run("load option defaults merge per property", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.tobj")
		configContent := `*server
  > host example.com
  > cert
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Defaults: map[string]interface{}{
				"server": map[string]interface{}{
					"host": "default.local",
					"port": 8080,
					"cert": "default.pem",
				},
				"database": map[string]interface{}{
					"pool": 10,
				},
			},
		})
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// File values win over defaults
		if host := cfg.GetString("server.host"); host != "example.com" {
			t.Errorf("Expected host 'example.com', got '%s'", host)
		}

		// Missing properties are filled in
		if port := cfg.GetInt("server.port"); port != 8080 {
			t.Errorf("Expected default port 8080, got %d", port)
		}
		if pool := cfg.GetInt("database.pool"); pool != 10 {
			t.Errorf("Expected default pool 10, got %d", pool)
		}

		// A valueless property counts as missing and is filled in
		if cert := cfg.GetString("server.cert"); cert != "default.pem" {
			t.Errorf("Expected default cert 'default.pem', got '%s'", cert)
		}
	})

	t.Run("top-level scalar default rejected", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.tobj")
		if err := os.WriteFile(configPath, []byte("*server > port 1\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := LoadWithOptions(configPath, LoadOptions{
			Defaults: map[string]interface{}{
				"debug": true,
			},
		})
		if err == nil {
			t.Fatal("Expected error for top-level scalar default")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeConfigError) {
			t.Errorf("Expected CodeConfigError, got %v", tobjerror.GetCode(err))
		}
	})
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString(`*server
  > host localhost
  > cert
`, FormatTOBJ)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Has("server.host") {
		t.Error("Expected Has true for existing key")
	}
	if cfg.Has("server.port") {
		t.Error("Expected Has false for missing key")
	}
	if cfg.Has("server.cert") {
		t.Error("Expected Has false for valueless property")
	}
	if cfg.Has("server") {
		t.Error("Expected Has false for single-segment key")
	}

	if err := cfg.Set("server.port", 9090); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	if port := cfg.GetInt("server.port"); port != 9090 {
		t.Errorf("Expected port 9090, got %d", port)
	}

	// Setting a deep key creates the intermediate objects
	if err := cfg.Set("cache.redis.host", "127.0.0.1"); err != nil {
		t.Fatalf("Failed to set nested value: %v", err)
	}
	if host := cfg.GetString("cache.redis.host"); host != "127.0.0.1" {
		t.Errorf("Expected host '127.0.0.1', got '%s'", host)
	}

	if err := cfg.Set("job.delay", 90*time.Second); err != nil {
		t.Fatalf("Failed to set duration: %v", err)
	}
	if delay := cfg.GetDuration("job.delay"); delay != 90*time.Second {
		t.Errorf("Expected delay 1m30s, got %v", delay)
	}

	if err := cfg.Set("tags.names", []string{"a", "b"}); err != nil {
		t.Fatalf("Failed to set string slice: %v", err)
	}
	if names := cfg.GetStringSlice("tags.names"); len(names) != 2 {
		t.Errorf("Expected 2 names, got %v", names)
	}

	if err := cfg.Set("debug", true); err == nil {
		t.Error("Expected error for single-segment key")
	} else if !tobjerror.HasCode(err, tobjerror.CodeInvalidInput) {
		t.Errorf("Expected CodeInvalidInput, got %v", tobjerror.GetCode(err))
	}

	if err := cfg.Set("server.bad", struct{}{}); err == nil {
		t.Error("Expected error for unsupported value type")
	}
}

func TestGetAll(t *testing.T) {
	cfg, err := LoadFromString(`*app
  > name demo
*app.cache
  > entries 100
`, FormatTOBJ)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	all, err := cfg.GetAll()
	if err != nil {
		t.Fatalf("Failed to get all values: %v", err)
	}

	app, ok := all["app"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected app section, got %T", all["app"])
	}
	if app["name"] != "demo" {
		t.Errorf("Expected name 'demo', got %v", app["name"])
	}

	cache, ok := app["cache"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected nested cache section, got %T", app["cache"])
	}
	if cache["entries"] != int64(100) {
		t.Errorf("Expected 100 entries, got %v", cache["entries"])
	}
}

func TestDocumentAndText(t *testing.T) {
	cfg, err := LoadFromString(`*server
  > host localhost
  > port 8080
`, FormatTOBJ)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Document returns a detached snapshot
	doc := cfg.Document()
	doc.Ensure("extra").SetProperty("x", tobjdocument.Int(1))
	if cfg.Has("extra.x") {
		t.Error("Expected config to be unaffected by snapshot mutation")
	}

	// Text renders canonical notation that parses back to the same document
	reparsed, err := tobj.Parse(cfg.Text())
	if err != nil {
		t.Fatalf("Failed to reparse config text: %v", err)
	}
	if !reparsed.Equal(cfg.Document()) {
		t.Error("Expected config text to round-trip")
	}
}

func TestLoadFromString(t *testing.T) {
	t.Run("TOBJ content", func(t *testing.T) {
		cfg, err := LoadFromString("*server > port 8080", FormatTOBJ)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if port := cfg.GetInt("server.port"); port != 8080 {
			t.Errorf("Expected port 8080, got %d", port)
		}
	})

	t.Run("JSON content", func(t *testing.T) {
		cfg, err := LoadFromString(`{"server": {"port": 8080}}`, FormatJSON)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if port := cfg.GetInt("server.port"); port != 8080 {
			t.Errorf("Expected port 8080, got %d", port)
		}
	})

	t.Run("auto defaults to TOBJ", func(t *testing.T) {
		cfg, err := LoadFromString("*app > name demo", FormatAuto)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Format() != FormatTOBJ {
			t.Errorf("Expected format TOBJ, got %v", cfg.Format())
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := LoadFromString("- 1", FormatTOBJ)
		if err == nil {
			t.Fatal("Expected error for invalid content")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeConfigError) {
			t.Errorf("Expected CodeConfigError, got %v", tobjerror.GetCode(err))
		}
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.tobj", FormatTOBJ},
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.json", FormatJSON},
		{"config.TOBJ", FormatTOBJ},
		{"config.txt", FormatTOBJ},
		{"config", FormatTOBJ},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.expected {
			t.Errorf("detectFormat(%q): expected %v, got %v", tt.path, tt.expected, got)
		}
	}
}

func TestFilePathAndFormat(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.tobj")
	configContent := `*test > value 1
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.FilePath() != configPath {
		t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
	}

	if cfg.Format() != FormatTOBJ {
		t.Errorf("Expected format TOBJ, got %v", cfg.Format())
	}

	summary := cfg.String()
	if !strings.Contains(summary, "format: tobj") {
		t.Errorf("Expected summary to mention the format, got %q", summary)
	}
}

func TestAliases(t *testing.T) {
	cfg, err := LoadFromString(`*server
  > host localhost
  > port 8080
  > debug true
  > ratio 0.5
  > timeout "15s"
  > tags
  - a
  - b
`, FormatTOBJ)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.S("server.host") != "localhost" {
		t.Error("S alias mismatch")
	}
	if cfg.I("server.port") != 8080 {
		t.Error("I alias mismatch")
	}
	if !cfg.B("server.debug") {
		t.Error("B alias mismatch")
	}
	if cfg.F("server.ratio") != 0.5 {
		t.Error("F alias mismatch")
	}
	if cfg.D("server.timeout") != 15*time.Second {
		t.Error("D alias mismatch")
	}
	if len(cfg.SS("server.tags")) != 2 {
		t.Error("SS alias mismatch")
	}
}

func BenchmarkGetString(b *testing.B) {
	cfg, err := LoadFromString(`*database
  > host localhost
  > port 5432
`, FormatTOBJ)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("database.host")
	}
}

func BenchmarkGetInt(b *testing.B) {
	cfg, err := LoadFromString(`*database
  > host localhost
  > port 5432
`, FormatTOBJ)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetInt("database.port")
	}
}
