// File: locale.go
// Title: Locale Detection and Management Implementation
// Description: Implements locale normalization, validation and detection
//              from HTTP Accept-Language headers with quality score parsing,
//              plus the mapping between locales and bundle file names.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of locale handling

package i18n

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// LocalePreference is a locale preference with its quality score
type LocalePreference struct {
	Locale  string  // Locale code (e.g. "en", "en-US", "de-DE")
	Quality float64 // Quality score (0.0 - 1.0)
}

// DetectLocale picks the best available locale for an Accept-Language
// header. An empty or unmatchable header yields the default locale.
func (m *Manager) DetectLocale(acceptLanguage string) string {
	if tobjstringx.IsBlank(acceptLanguage) {
		return m.GetDefaultLocale()
	}

	preferences := ParseAcceptLanguage(acceptLanguage)
	if len(preferences) == 0 {
		return m.GetDefaultLocale()
	}

	if match := findBestLocaleMatch(preferences, m.GetAvailableLocales()); match != "" {
		return match
	}

	return m.GetDefaultLocale()
}

// ParseAcceptLanguage parses an Accept-Language header into locale
// preferences sorted by descending quality. Entries without an explicit
// q parameter count as quality 1.0.
func ParseAcceptLanguage(acceptLang string) []LocalePreference {
	var preferences []LocalePreference

	for _, part := range strings.Split(acceptLang, ",") {
		part = strings.TrimSpace(part)
		if tobjstringx.IsBlank(part) {
			continue
		}

		locale := part
		quality := 1.0

		// A part looks like "en-US;q=0.9" or just "de"
		if idx := strings.Index(part, ";"); idx >= 0 {
			locale = strings.TrimSpace(part[:idx])
			for _, param := range strings.Split(part[idx+1:], ";") {
				param = strings.TrimSpace(param)
				if !strings.HasPrefix(param, "q=") {
					continue
				}
				if q, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64); err == nil {
					quality = q
				}
				break
			}
		}

		if locale != "" {
			preferences = append(preferences, LocalePreference{Locale: locale, Quality: quality})
		}
	}

	// Stable, so equal qualities keep the header's order
	sort.SliceStable(preferences, func(i, j int) bool {
		return preferences[i].Quality > preferences[j].Quality
	})

	return preferences
}

// findBestLocaleMatch matches preferences against available locales:
// exact first, then base language, then any regional variant of the
// base language.
func findBestLocaleMatch(preferences []LocalePreference, available []string) string {
	availableSet := make(map[string]string, len(available))
	baseLocales := make(map[string]string, len(available))

	for _, locale := range available {
		availableSet[strings.ToLower(locale)] = locale

		base := strings.Split(strings.ToLower(locale), "-")[0]
		if _, ok := baseLocales[base]; !ok {
			baseLocales[base] = locale
		}
	}

	for _, pref := range preferences {
		wanted := strings.ToLower(strings.ReplaceAll(pref.Locale, "_", "-"))

		if match, ok := availableSet[wanted]; ok {
			return match
		}

		base := strings.Split(wanted, "-")[0]
		if match, ok := baseLocales[base]; ok {
			return match
		}

		for _, locale := range available {
			if strings.HasPrefix(strings.ToLower(locale), base+"-") {
				return locale
			}
		}
	}

	return ""
}

// NormalizeLocale normalizes a locale string to the canonical
// "language" or "language-COUNTRY" form. Invalid input normalizes to
// the empty string.
func NormalizeLocale(locale string) string {
	if tobjstringx.IsBlank(locale) {
		return ""
	}

	locale = strings.ToLower(strings.TrimSpace(locale))
	locale = strings.ReplaceAll(locale, "_", "-")

	parts := strings.Split(locale, "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}

	return language
}

// ValidateLocale validates that a locale string is in a usable format
func ValidateLocale(locale string) error {
	if tobjstringx.IsBlank(locale) {
		return tobjerror.New("locale cannot be empty").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale")
	}

	if NormalizeLocale(locale) == "" {
		return tobjerror.New("invalid locale format").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g. 'en', 'en-US'")
	}

	return nil
}

// SplitLocale splits a locale into its language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	parts := strings.Split(normalized, "-")
	language = parts[0]
	if len(parts) > 1 {
		country = parts[1]
	}

	return language, country
}

// DisplayName returns a locale's self-description, read from the
// "meta.language" property of its bundle. A locale without a bundle, or
// a bundle without the property, falls back to the locale code.
func (m *Manager) DisplayName(locale string) string {
	normalized := NormalizeLocale(locale)

	lookup := normalized
	if lookup == "" {
		lookup = locale
	}

	m.mu.RLock()
	b, ok := m.bundles[lookup]
	if ok {
		if value, found := lookupValue(b.doc, "meta.language"); found {
			if name, err := value.AsString(); err == nil && name != "" {
				m.mu.RUnlock()
				return name
			}
		}
	}
	m.mu.RUnlock()

	if normalized != "" {
		return normalized
	}
	return locale
}

// FormatLocaleForFilename formats a locale for use in a bundle file
// name, with underscores in place of hyphens
func FormatLocaleForFilename(locale string) string {
	return strings.ReplaceAll(NormalizeLocale(locale), "-", "_")
}

// ParseLocaleFromFilename extracts the locale a bundle file name
// encodes, undoing the underscore substitution
func ParseLocaleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	return NormalizeLocale(strings.ReplaceAll(name, "_", "-"))
}
