// File: watch_test.go
// Title: Locale Bundle Watching Tests
// Description: Tests for polling-based bundle watching covering reloads,
//              newly added locales, removed locales and failed reloads.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial test implementation

package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

type localeEvent struct {
	locale string
	doc    *tobjdocument.Document
}

func collectEvents(manager *Manager) <-chan localeEvent {
	events := make(chan localeEvent, 8)
	manager.OnLocaleChange(func(locale string, doc *tobjdocument.Document) {
		select {
		case events <- localeEvent{locale: locale, doc: doc}:
		default:
		}
	})
	return events
}

func waitForEvent(t *testing.T, events <-chan localeEvent, locale string) localeEvent {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case event := <-events:
			if event.locale == locale {
				return event
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for %s bundle event", locale)
			return localeEvent{}
		}
	}
}

func TestWatchReloadBundle(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")

	manager, err := NewWithWatch(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}
	defer manager.StopWatching()

	if !manager.IsWatching() {
		t.Fatal("Expected watching to be active")
	}

	events := collectEvents(manager)

	bundlePath := filepath.Join(dir, "en.tobj")
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hi there\"\n")
	// Push the modification time forward so the poller sees the change
	// regardless of filesystem timestamp granularity
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(bundlePath, future, future); err != nil {
		t.Fatalf("Failed to update modification time: %v", err)
	}

	event := waitForEvent(t, events, "en")
	if event.doc == nil {
		t.Fatal("Expected a document snapshot for a reloaded bundle")
	}

	if result := manager.T("messages.simple"); result != "Hi there" {
		t.Errorf("Expected 'Hi there' after reload, got '%s'", result)
	}
}

func TestWatchPicksUpNewLocale(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")

	manager, err := NewWithWatch(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}
	defer manager.StopWatching()

	events := collectEvents(manager)

	writeBundle(t, dir, "de.tobj", "* messages\n  > simple \"Hallo\"\n")

	event := waitForEvent(t, events, "de")
	if event.doc == nil {
		t.Fatal("Expected a document snapshot for a new bundle")
	}

	if !manager.HasLocale("de") {
		t.Fatal("Expected de bundle to be available")
	}
	if err := manager.SetLocale("de"); err != nil {
		t.Fatalf("Failed to set locale to de: %v", err)
	}
	if result := manager.T("messages.simple"); result != "Hallo" {
		t.Errorf("Expected 'Hallo', got '%s'", result)
	}
}

func TestWatchDropsRemovedLocale(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")
	writeBundle(t, dir, "de.tobj", "* messages\n  > simple \"Hallo\"\n")

	manager, err := NewWithWatch(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}
	defer manager.StopWatching()

	events := collectEvents(manager)

	if err := os.Remove(filepath.Join(dir, "de.tobj")); err != nil {
		t.Fatalf("Failed to remove de bundle: %v", err)
	}

	event := waitForEvent(t, events, "de")
	if event.doc != nil {
		t.Error("Expected a nil document for a removed bundle")
	}

	if manager.HasLocale("de") {
		t.Error("Expected de bundle to be dropped")
	}
}

func TestStopWatching(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")

	manager, err := NewWithWatch(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}

	if !manager.IsWatching() {
		t.Fatal("Expected watching to be active")
	}

	manager.StopWatching()
	if manager.IsWatching() {
		t.Error("Expected watching to be stopped")
	}
}

func TestReloadKeepsOldBundleOnError(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")

	manager, err := New(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}

	// Break the file and trigger a reload directly
	writeBundle(t, dir, "en.tobj", "> orphan 1\n")

	if err := manager.reloadBundle("en", filepath.Join(dir, "en.tobj")); err == nil {
		t.Fatal("Expected reload to fail for malformed bundle")
	}

	// The previous bundle stays in effect
	if result := manager.T("messages.simple"); result != "Hello" {
		t.Errorf("Expected old message to survive failed reload, got '%s'", result)
	}
}

func TestReloadAll(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hello\"\n")

	manager, err := New(Options{DefaultLocale: "en", BundlesDir: dir})
	if err != nil {
		t.Fatalf("Failed to create i18n manager: %v", err)
	}

	writeBundle(t, dir, "en.tobj", "* messages\n  > simple \"Hi again\"\n")
	writeBundle(t, dir, "fr.tobj", "* messages\n  > simple \"Bonjour\"\n")

	if err := manager.ReloadAll(); err != nil {
		t.Fatalf("Failed to reload bundles: %v", err)
	}

	if result := manager.T("messages.simple"); result != "Hi again" {
		t.Errorf("Expected 'Hi again' after reload, got '%s'", result)
	}
	if !manager.HasLocale("fr") {
		t.Error("Expected fr bundle to be picked up by ReloadAll")
	}
}
