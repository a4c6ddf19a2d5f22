// File: discovery_test.go
// Title: Configuration Discovery Tests
// Description: Tests for automatic configuration file discovery and
//              environment-based configuration loading.
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
	"testing"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

func TestDiscover(t *testing.T) {
	t.Run("discovers config file", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.tobj")
		if err := os.WriteFile(configPath, []byte("*app > name discovered\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Discover(DiscoveryOptions{
			Paths: []string{tempDir},
		})
		if err != nil {
			t.Fatalf("Failed to discover config: %v", err)
		}

		if name := cfg.GetString("app.name"); name != "discovered" {
			t.Errorf("Expected name 'discovered', got '%s'", name)
		}
		if cfg.FilePath() != configPath {
			t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
		}
	})

	t.Run("prefers native extension", func(t *testing.T) {
		tempDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tempDir, "config.toml"), []byte("[app]\nname = \"toml\"\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if err := os.WriteFile(filepath.Join(tempDir, "config.tobj"), []byte("*app > name tobj\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Discover(DiscoveryOptions{
			Paths: []string{tempDir},
		})
		if err != nil {
			t.Fatalf("Failed to discover config: %v", err)
		}

		if name := cfg.GetString("app.name"); name != "tobj" {
			t.Errorf("Expected the .tobj file to win, got name '%s'", name)
		}
		if cfg.Format() != FormatTOBJ {
			t.Errorf("Expected format TOBJ, got %v", cfg.Format())
		}
	})

	t.Run("required config missing", func(t *testing.T) {
		tempDir := t.TempDir()

		_, err := Discover(DiscoveryOptions{
			Paths:    []string{tempDir},
			Required: true,
		})
		if err == nil {
			t.Fatal("Expected error when no config file exists")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeNotFound) {
			t.Errorf("Expected CodeNotFound, got %v", tobjerror.GetCode(err))
		}
	})

	t.Run("optional config missing yields empty config", func(t *testing.T) {
		tempDir := t.TempDir()

		cfg, err := Discover(DiscoveryOptions{
			Paths:    []string{tempDir},
			Required: false,
		})
		if err != nil {
			t.Fatalf("Expected empty config, got error: %v", err)
		}

		if cfg.Has("app.name") {
			t.Error("Expected empty configuration")
		}
		if name := cfg.GetString("app.name", "fallback"); name != "fallback" {
			t.Errorf("Expected getter default 'fallback', got '%s'", name)
		}
	})

	t.Run("unreadable config file is an error", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.tobj")
		if err := os.WriteFile(configPath, []byte("> orphan 1\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		_, err := Discover(DiscoveryOptions{
			Paths: []string{tempDir},
		})
		if err == nil {
			t.Fatal("Expected error for malformed discovered file")
		}
		if !tobjerror.HasCode(err, tobjerror.CodeConfigError) {
			t.Errorf("Expected CodeConfigError, got %v", tobjerror.GetCode(err))
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "app.tobj")
	if err := os.WriteFile(configPath, []byte("*app > name demo\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	options := DiscoveryOptions{
		Paths:      []string{tempDir},
		Filenames:  []string{"app"},
		Extensions: []string{".tobj"},
	}

	found, err := FindConfigFile(options)
	if err != nil {
		t.Fatalf("Failed to find config file: %v", err)
	}
	if found != configPath {
		t.Errorf("Expected path '%s', got '%s'", configPath, found)
	}

	options.Filenames = []string{"missing"}
	if _, err := FindConfigFile(options); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestListPossibleConfigFiles(t *testing.T) {
	options := DiscoveryOptions{
		Paths:      []string{"/etc/app", "."},
		Filenames:  []string{"config"},
		Extensions: []string{".tobj", ".toml"},
	}

	paths := ListPossibleConfigFiles(options)
	if len(paths) != 4 {
		t.Fatalf("Expected 4 candidate paths, got %d", len(paths))
	}
	if paths[0] != filepath.Join("/etc/app", "config.tobj") {
		t.Errorf("Unexpected first candidate: %s", paths[0])
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("TOBJENV_SERVER_HOST", "envhost")
	os.Setenv("TOBJENV_SERVER_PORT", "9090")
	os.Setenv("TOBJENV_SERVER_RATIO", "2.5")
	os.Setenv("TOBJENV_APP_DEBUG", "true")
	os.Setenv("TOBJENV_VERSION", "7")
	defer func() {
		os.Unsetenv("TOBJENV_SERVER_HOST")
		os.Unsetenv("TOBJENV_SERVER_PORT")
		os.Unsetenv("TOBJENV_SERVER_RATIO")
		os.Unsetenv("TOBJENV_APP_DEBUG")
		os.Unsetenv("TOBJENV_VERSION")
	}()

	cfg := LoadFromEnv("TOBJENV")

	// Values land in the document with parsed types
	doc := cfg.Document()
	server, ok := doc.Get("server")
	if !ok {
		t.Fatal("Expected server object")
	}

	host, _ := server.Property("host")
	if host.Kind() != tobjdocument.KindString || host.String() != "envhost" {
		t.Errorf("Expected host string 'envhost', got %v", host)
	}

	port, _ := server.Property("port")
	if port.Kind() != tobjdocument.KindInt {
		t.Errorf("Expected port to be an integer, got %v", port.Kind())
	}
	if cfg.GetInt("server.port") != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.GetInt("server.port"))
	}

	ratio, _ := server.Property("ratio")
	if ratio.Kind() != tobjdocument.KindFloat {
		t.Errorf("Expected ratio to be a float, got %v", ratio.Kind())
	}

	if !cfg.GetBool("app.debug") {
		t.Error("Expected debug true")
	}

	// Single-segment keys never land in the document but stay reachable
	// through the environment lookup
	if doc.Has("version") {
		t.Error("Expected single-segment key to be skipped in the document")
	}
	if version := cfg.GetInt("version"); version != 7 {
		t.Errorf("Expected version 7 via environment, got %d", version)
	}
}
