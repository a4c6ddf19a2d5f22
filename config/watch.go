// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements polling-based file watching for configuration
//              hot-reloading with change notification callbacks.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"time"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if tobjstringx.IsBlank(c.filePath) {
		return tobjerror.New("file path required for watching").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	// Simple polling-based watcher (can be enhanced with fsnotify later)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		fileInfo, err := os.Stat(c.filePath)
		if err != nil {
			// File might have been deleted or moved
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if fileInfo.ModTime().After(lastModified) {
			// File was modified - reload configuration
			if err := c.reload(); err != nil {
				// Keep serving the old configuration and keep watching
				continue
			}
		}
	}

	return nil
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return tobjerror.Wrap(err, "failed to read config file during reload").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newDoc, err := parseContent(content, c.format)
	if err != nil {
		return tobjerror.Wrap(err, "failed to parse config file during reload").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := c.snapshotLocked()

	c.doc = newDoc
	if fileInfo, err := os.Stat(c.filePath); err == nil {
		c.lastModified = fileInfo.ModTime()
	}

	newConfig := c.snapshotLocked()

	// Copy watchers to avoid holding the lock during callbacks
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// snapshotLocked builds a detached copy for change notifications.
// Callers must hold the lock.
func (c *Config) snapshotLocked() *Config {
	return &Config{
		doc:       c.doc.Clone(),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
