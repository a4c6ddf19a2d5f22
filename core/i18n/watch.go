// File: watch.go
// Title: Locale Bundle Watching Implementation
// Description: Implements polling-based watching of the bundles directory
//              so message bundles hot-reload and newly added or removed
//              locales are picked up at runtime.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of bundle watching

package i18n

import (
	"os"
	"path/filepath"
	"time"
)

// startWatching polls the bundles directory until watching is stopped
func (m *Manager) startWatching() {
	// Simple polling-based watcher (can be enhanced with fsnotify later)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !m.IsWatching() {
			return
		}
		m.pollBundles()
	}
}

// pollBundles reloads changed bundles, drops deleted ones and picks up
// bundle files added after startup
func (m *Manager) pollBundles() {
	m.mu.RLock()
	known := make(map[string]*bundle, len(m.bundles))
	for locale, b := range m.bundles {
		known[locale] = b
	}
	dir := m.bundlesDir
	m.mu.RUnlock()

	for locale, b := range known {
		info, err := os.Stat(b.path)
		if err != nil {
			m.removeBundle(locale)
			continue
		}

		if info.ModTime().After(b.modified) {
			// Keep serving the old bundle when the new one is broken
			_ = m.reloadBundle(locale, b.path)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		locale, ok := localeFromFileName(entry.Name())
		if !ok {
			continue
		}
		if _, exists := known[locale]; exists {
			continue
		}

		_ = m.reloadBundle(locale, filepath.Join(dir, entry.Name()))
	}
}

// reloadBundle loads a bundle file and notifies handlers on success
func (m *Manager) reloadBundle(locale, path string) error {
	if err := m.loadBundle(locale, path); err != nil {
		return err
	}

	m.clearTemplates(locale)
	m.notifyChanged(locale)
	return nil
}

// removeBundle forgets a locale whose file went away and notifies
// handlers with a nil document
func (m *Manager) removeBundle(locale string) {
	m.mu.Lock()
	if _, ok := m.bundles[locale]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.bundles, locale)
	watchers := append([]LocaleChangeHandler(nil), m.watchers...)
	m.mu.Unlock()

	m.clearTemplates(locale)

	for _, handler := range watchers {
		if handler != nil {
			go handler(locale, nil)
		}
	}
}

// notifyChanged hands a detached snapshot of the reloaded bundle to
// every registered handler
func (m *Manager) notifyChanged(locale string) {
	m.mu.RLock()
	b, ok := m.bundles[locale]
	watchers := append([]LocaleChangeHandler(nil), m.watchers...)
	m.mu.RUnlock()

	if !ok {
		return
	}

	snapshot := b.doc.Clone()
	for _, handler := range watchers {
		if handler != nil {
			go handler(locale, snapshot)
		}
	}
}

// StopWatching stops bundle monitoring
func (m *Manager) StopWatching() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watching = false
}

// IsWatching returns whether bundle monitoring is active
func (m *Manager) IsWatching() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.watching
}

// ReloadAll rescans the bundles directory and reloads every bundle
func (m *Manager) ReloadAll() error {
	return m.loadAllBundles()
}
