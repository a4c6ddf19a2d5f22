// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package i18n provides message translation backed by TOBJ
//              notation bundles, with template interpolation,
//              pluralization, locale detection and hot-reloading.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of TOBJ message bundles

/*
Package i18n provides message translation backed by TOBJ bundles.

Package: i18n
Title: Internationalization
Description: Serves translated messages from per-locale TOBJ notation
             files, with dotted-key lookup, template interpolation,
             pluralization, Accept-Language detection, locale fallback
             and hot-reloading of bundle files.
Version: v0.1.0
Created: 2026-07-18
Modified: 2026-07-18

Change History:
- 2026-07-18 v0.1.0: Initial implementation of TOBJ message bundles

Key Features:
  • Message bundles in native TOBJ notation, one file per locale
  • Dotted message keys resolved against the bundle document
  • Template interpolation with {{.Field}} placeholders
  • Pluralization through list-valued messages
  • Fallback to the default locale for missing messages
  • Locale detection from Accept-Language headers
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access

A bundle is an ordinary TOBJ file named after its locale, "en.tobj" or
"de_DE.tobj" (underscores stand in for hyphens in file names). Message
keys follow the document structure: the first segment names a top-level
object, middle segments name nested children and the last segment names
a property. Plural messages are list properties with the singular form
first.

	# locales/en.tobj
	* meta
	  > language "English"

	* messages
	  > greeting "Hello, {{.Name}}!"
	  > inbox
	  - "You have one message"
	  - "You have {{.Count}} messages"

	* errors.files
	  > not_found "File not found"

# Basic Usage

Create a manager and translate messages:

	manager, err := i18n.New(i18n.Options{
		DefaultLocale: "en",
		BundlesDir:    "./locales",
	})
	if err != nil {
		return err
	}

	manager.T("messages.greeting", map[string]interface{}{"Name": "Ada"})
	manager.T("errors.files.not_found")
	manager.Plural("messages.inbox", 3, map[string]interface{}{"Count": 3})

T translates missing keys to the empty string; TryT reports them as
errors and TWithFallback substitutes a caller-supplied default:

	text, err := manager.TryT("errors.files.not_found")
	text = manager.TWithFallback("errors.files.locked", "File is locked")

# Locales

Switch locales at runtime, or pick one from an Accept-Language header:

	if err := manager.SetLocale("de-DE"); err != nil {
		return err
	}

	locale := manager.DetectLocale("de-DE,de;q=0.9,en;q=0.8")

A message missing from the current locale falls back to the default
locale unless DisableFallback is set. A valueless property counts as
missing, so a bundle can list its untranslated keys without hiding the
default text.

# Hot-Reloading

Watch the bundles directory for edits, additions and removals:

	manager, err := i18n.NewWithWatch(i18n.Options{
		DefaultLocale: "en",
		BundlesDir:    "./locales",
	})
	if err != nil {
		return err
	}
	defer manager.StopWatching()

	manager.OnLocaleChange(func(locale string, doc *document.Document) {
		// doc is a detached snapshot; nil means the locale was removed
	})

# Thread Safety Guarantees

All Manager methods are safe for concurrent use. Bundle access takes a
read lock, locale switches and reloads take the write lock, and
compiled message templates live behind their own lock so rendering
never blocks bundle reads.
*/
package i18n
