// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager for loading and serving message
//              bundles held in TOBJ notation, with dotted-key lookup,
//              template interpolation, pluralization and locale fallback.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of TOBJ message bundles

package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"text/template"
	"time"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	"github.com/tobj-format/tobj-go/tobj"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// bundleExt is the file extension message bundles carry
const bundleExt = ".tobj"

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale   string // Default locale (e.g. "en")
	BundlesDir      string // Directory containing <locale>.tobj bundles
	Watch           bool   // Enable bundle watching for hot-reloading
	DisableFallback bool   // Do not fall back to the default locale
}

// Manager serves translated messages from per-locale TOBJ bundles
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	bundlesDir    string
	fallback      bool
	bundles       map[string]*bundle
	watchers      []LocaleChangeHandler
	watching      bool

	// Compiled message templates, guarded separately so rendering
	// never writes under the bundle lock
	tmplMu    sync.Mutex
	templates map[string]*template.Template
}

// bundle is one locale's message document together with its source file
type bundle struct {
	locale   string
	path     string
	doc      *tobjdocument.Document
	modified time.Time
}

// LocaleChangeHandler is called when a locale bundle changes on disk.
// The document is a detached snapshot; a nil document means the locale
// was removed.
type LocaleChangeHandler func(locale string, doc *tobjdocument.Document)

// New creates a new i18n manager and loads all bundles found in the
// bundles directory. The default locale's bundle must exist.
func New(options Options) (*Manager, error) {
	if tobjstringx.IsBlank(options.DefaultLocale) {
		return nil, tobjerror.New("default locale cannot be empty").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("i18n.New")
	}

	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		return nil, tobjerror.New("invalid default locale format").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("i18n.New").
			WithDetail("locale", options.DefaultLocale)
	}

	if tobjstringx.IsBlank(options.BundlesDir) {
		options.BundlesDir = "./locales"
	}

	if _, err := os.Stat(options.BundlesDir); os.IsNotExist(err) {
		return nil, tobjerror.New("bundles directory not found").
			WithCode(tobjerror.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("directory", options.BundlesDir)
	}

	manager := &Manager{
		defaultLocale: defaultLocale,
		currentLocale: defaultLocale,
		bundlesDir:    options.BundlesDir,
		fallback:      !options.DisableFallback,
		bundles:       make(map[string]*bundle),
		templates:     make(map[string]*template.Template),
		watching:      options.Watch,
	}

	if err := manager.loadAllBundles(); err != nil {
		return nil, err
	}

	if options.Watch {
		go manager.startWatching()
	}

	return manager, nil
}

// NewWithWatch creates a new i18n manager with bundle watching enabled
func NewWithWatch(options Options) (*Manager, error) {
	options.Watch = true
	return New(options)
}

// loadAllBundles loads every bundle file from the bundles directory
func (m *Manager) loadAllBundles() error {
	entries, err := os.ReadDir(m.bundlesDir)
	if err != nil {
		return tobjerror.Wrap(err, "failed to read bundles directory").
			WithCode(tobjerror.CodeIOError).
			WithOperation("i18n.loadAllBundles").
			WithDetail("directory", m.bundlesDir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		locale, ok := localeFromFileName(entry.Name())
		if !ok {
			continue
		}

		// A broken bundle must not take the whole manager down
		if err := m.loadBundle(locale, filepath.Join(m.bundlesDir, entry.Name())); err != nil {
			continue
		}
	}

	if !m.HasLocale(m.defaultLocale) {
		return tobjerror.New("bundle for default locale not found").
			WithCode(tobjerror.CodeNotFound).
			WithOperation("i18n.loadAllBundles").
			WithDetail("locale", m.defaultLocale).
			WithDetail("directory", m.bundlesDir)
	}

	return nil
}

// loadBundle parses one bundle file through the engine and stores it
func (m *Manager) loadBundle(locale, path string) error {
	doc, err := tobj.LoadFile(path)
	if err != nil {
		return tobjerror.Wrap(err, "failed to load locale bundle").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("i18n.loadBundle").
			WithDetail("locale", locale).
			WithDetail("path", path)
	}

	modified := time.Now()
	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	}

	m.mu.Lock()
	m.bundles[locale] = &bundle{locale: locale, path: path, doc: doc, modified: modified}
	m.mu.Unlock()

	return nil
}

// localeFromFileName extracts the locale a bundle file name encodes.
// Only files with the bundle extension and a valid locale part count.
func localeFromFileName(name string) (string, bool) {
	if !strings.EqualFold(filepath.Ext(name), bundleExt) {
		return "", false
	}

	locale := ParseLocaleFromFilename(name)
	if locale == "" {
		return "", false
	}

	return locale, true
}

// T translates a key with optional template data. A missing key
// translates to the empty string.
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	text, _ := m.TryT(key, data...)
	return text
}

// TryT translates a key and returns an error if translation fails.
// When template rendering fails, the raw message text is returned
// alongside the error.
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	locale := m.currentLocale
	value, ok := m.messageValue(key, locale)
	m.mu.RUnlock()

	if !ok {
		return "", tobjerror.New("message not found").
			WithCode(tobjerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	text := messageText(value)
	if len(data) > 0 && data[0] != nil {
		return m.render(locale+":"+key, text, data[0])
	}

	return text, nil
}

// TWithFallback translates a key with a caller-supplied default message.
// The default is rendered with the template data too, so both paths can
// interpolate.
func (m *Manager) TWithFallback(key string, fallbackMsg string, data ...map[string]interface{}) string {
	if text, err := m.TryT(key, data...); err == nil {
		return text
	}

	if len(data) > 0 && data[0] != nil {
		if rendered, err := m.render("fallback:"+key, fallbackMsg, data[0]); err == nil {
			return rendered
		}
	}

	return fallbackMsg
}

// Plural returns the plural form matching count. Plural messages are
// list properties in the bundle, singular form first; a scalar message
// serves as its own only form. A missing key renders as "[key]".
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale := m.currentLocale
	value, ok := m.messageValue(key, locale)
	m.mu.RUnlock()

	if !ok {
		return "[" + key + "]"
	}

	forms := pluralForms(value)
	if len(forms) == 0 {
		return "[" + key + "]"
	}

	index := pluralFormIndex(count, locale)
	if index >= len(forms) {
		index = len(forms) - 1
	}

	selected := forms[index]
	if data != nil {
		cacheKey := fmt.Sprintf("%s:%s#%d", locale, key, index)
		if rendered, err := m.render(cacheKey, selected, data); err == nil {
			return rendered
		}
	}

	return selected
}

// messageValue resolves a key against the locale's bundle, falling back
// to the default locale when enabled. Null values count as missing, so
// a valueless property falls back like an absent one.
// Callers must hold at least the read lock.
func (m *Manager) messageValue(key, locale string) (tobjdocument.Value, bool) {
	if b, ok := m.bundles[locale]; ok {
		if value, ok := lookupValue(b.doc, key); ok && !value.IsNull() {
			return value, true
		}
	}

	if m.fallback && locale != m.defaultLocale {
		if b, ok := m.bundles[m.defaultLocale]; ok {
			if value, ok := lookupValue(b.doc, key); ok && !value.IsNull() {
				return value, true
			}
		}
	}

	return tobjdocument.Value{}, false
}

// lookupValue resolves a dotted message key against a bundle document.
// All segments but the last walk object nodes; the last names a
// property. Single-segment keys cannot resolve, because the top level
// of a document holds objects only.
func lookupValue(doc *tobjdocument.Document, key string) (tobjdocument.Value, bool) {
	segments := strings.Split(key, ".")
	if len(segments) < 2 {
		return tobjdocument.Value{}, false
	}

	node, ok := doc.Get(segments[0])
	if !ok {
		return tobjdocument.Value{}, false
	}

	for _, segment := range segments[1 : len(segments)-1] {
		if node, ok = node.Child(segment); !ok {
			return tobjdocument.Value{}, false
		}
	}

	return node.Property(segments[len(segments)-1])
}

// messageText renders a message value as text. List values contribute
// their first element, so plural messages read naturally through T.
func messageText(value tobjdocument.Value) string {
	if value.Kind() == tobjdocument.KindList {
		items, err := value.Items()
		if err != nil || len(items) == 0 {
			return ""
		}
		return items[0].String()
	}
	return value.String()
}

// pluralForms expands a message value into its plural forms
func pluralForms(value tobjdocument.Value) []string {
	if value.Kind() == tobjdocument.KindList {
		items, err := value.Items()
		if err != nil {
			return nil
		}
		forms := make([]string, len(items))
		for i, item := range items {
			forms[i] = item.String()
		}
		return forms
	}
	return []string{value.String()}
}

// pluralFormIndex selects the form index for a count. Two-form rules
// only; French and Portuguese treat zero as singular.
func pluralFormIndex(count int, locale string) int {
	language, _ := SplitLocale(locale)
	switch language {
	case "fr", "pt":
		if count <= 1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// render interpolates template data into a message. Compiled templates
// are cached per locale and key, so switching locales never reuses
// another locale's template.
func (m *Manager) render(cacheKey, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, ok := m.templates[cacheKey]
	if !ok {
		parsed, err := template.New(cacheKey).Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, tobjerror.Wrap(err, "message template does not parse").
				WithCode(tobjerror.CodeInvalidFormat).
				WithOperation("i18n.render").
				WithDetail("key", cacheKey)
		}
		tmpl = parsed
		m.templates[cacheKey] = tmpl
	}
	m.tmplMu.Unlock()

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return text, tobjerror.Wrap(err, "message template failed to render").
			WithCode(tobjerror.CodeInvalidFormat).
			WithOperation("i18n.render").
			WithDetail("key", cacheKey)
	}

	return out.String(), nil
}

// clearTemplates drops every cached template belonging to a locale
func (m *Manager) clearTemplates(locale string) {
	m.tmplMu.Lock()
	defer m.tmplMu.Unlock()

	prefix := locale + ":"
	for key := range m.templates {
		if strings.HasPrefix(key, prefix) {
			delete(m.templates, key)
		}
	}
}

// SetLocale changes the current locale. The locale must have a loaded
// bundle.
func (m *Manager) SetLocale(locale string) error {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return tobjerror.New("invalid locale format").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bundles[normalized]; !ok {
		return tobjerror.New("locale not available").
			WithCode(tobjerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", normalized)
	}

	m.currentLocale = normalized
	return nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns all loaded locales in sorted order
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.bundles))
	for locale := range m.bundles {
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale has a loaded bundle
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.bundles[locale]
	return ok
}

// HasTranslation checks if a key resolves in the current locale,
// including through fallback
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.messageValue(key, m.currentLocale)
	return ok
}

// GetTranslationKeys returns all message keys of the current locale's
// bundle in sorted order
func (m *Manager) GetTranslationKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.bundles[m.currentLocale]
	if !ok {
		return nil
	}

	var keys []string
	for _, obj := range b.doc.Objects() {
		collectKeys(obj, obj.Name(), &keys)
	}

	sort.Strings(keys)
	return keys
}

// collectKeys walks an object node and gathers dotted keys for every
// property it and its descendants carry
func collectKeys(node *tobjdocument.ObjectNode, prefix string, keys *[]string) {
	for _, prop := range node.Properties() {
		*keys = append(*keys, prefix+"."+prop.Name)
	}
	for _, child := range node.Children() {
		collectKeys(child, prefix+"."+child.Name(), keys)
	}
}

// OnLocaleChange registers a handler for bundle changes
func (m *Manager) OnLocaleChange(handler LocaleChangeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchers = append(m.watchers, handler)
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s", m.defaultLocale, m.currentLocale),
		fmt.Sprintf("bundlesDir: %s", m.bundlesDir),
	}

	if m.fallback {
		parts = append(parts, "fallback: true")
	}
	if m.watching {
		parts = append(parts, "watching: true")
	}

	parts = append(parts, fmt.Sprintf("locales: %d}", len(m.bundles)))

	return strings.Join(parts, ", ")
}
