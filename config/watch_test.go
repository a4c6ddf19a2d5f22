// File: watch_test.go
// Title: Configuration Watching Tests
// Description: Tests for polling-based configuration file watching and
//              change notifications.
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
	"time"
)

func TestWatchReload(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "watch.tobj")
	if err := os.WriteFile(configPath, []byte("*server > port 8080\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithWatch(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	defer cfg.StopWatching()

	if !cfg.IsWatching() {
		t.Fatal("Expected watching to be active")
	}

	changes := make(chan [2]int, 1)
	cfg.OnChange(func(oldCfg, newCfg *Config) {
		select {
		case changes <- [2]int{oldCfg.GetInt("server.port"), newCfg.GetInt("server.port")}:
		default:
		}
	})

	if err := os.WriteFile(configPath, []byte("*server > port 9090\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test config: %v", err)
	}
	// Push the modification time forward so the poller sees the change
	// regardless of filesystem timestamp granularity
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(configPath, future, future); err != nil {
		t.Fatalf("Failed to update modification time: %v", err)
	}

	select {
	case ports := <-changes:
		if ports[0] != 8080 {
			t.Errorf("Expected old port 8080, got %d", ports[0])
		}
		if ports[1] != 9090 {
			t.Errorf("Expected new port 9090, got %d", ports[1])
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for change notification")
	}

	if port := cfg.GetInt("server.port"); port != 9090 {
		t.Errorf("Expected reloaded port 9090, got %d", port)
	}
}

func TestStopWatching(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "watch.tobj")
	if err := os.WriteFile(configPath, []byte("*server > port 8080\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadWithWatch(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.IsWatching() {
		t.Fatal("Expected watching to be active")
	}

	cfg.StopWatching()
	if cfg.IsWatching() {
		t.Error("Expected watching to be stopped")
	}
}

func TestReloadKeepsOldConfigOnError(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "watch.tobj")
	if err := os.WriteFile(configPath, []byte("*server > port 8080\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Break the file and trigger a reload directly
	if err := os.WriteFile(configPath, []byte("> orphan 1\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite test config: %v", err)
	}

	if err := cfg.reload(); err == nil {
		t.Fatal("Expected reload to fail for malformed file")
	}

	// The previous configuration stays in effect
	if port := cfg.GetInt("server.port"); port != 8080 {
		t.Errorf("Expected old port 8080 to survive failed reload, got %d", port)
	}
}
