// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOBJ
//              files (with TOML, YAML and JSON fallbacks) with environment
//              variable support.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with TOBJ/TOML/YAML/JSON support

package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	"github.com/tobj-format/tobj-go/tobj"
	tobjconvert "github.com/tobj-format/tobj-go/tobj/convert"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjfilex "github.com/tobj-format/tobj-go/utils/filex"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOBJ represents TOBJ notation (default)
	FormatTOBJ Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML

	// FormatJSON represents JSON format
	FormatJSON

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOBJ:
		return "tobj"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// bridgeFormat maps a configuration format to the convert package
// format used for the non-native notations.
func (f Format) bridgeFormat() (tobjconvert.Format, bool) {
	switch f {
	case FormatTOML:
		return tobjconvert.FormatTOML, true
	case FormatYAML:
		return tobjconvert.FormatYAML, true
	case FormatJSON:
		return tobjconvert.FormatJSON, true
	default:
		return tobjconvert.FormatAuto, false
	}
}

// Config represents a configuration instance with thread-safe access.
// Configuration data is held as a TOBJ document, so dotted keys follow
// the document structure: the first segment names a top-level object,
// middle segments name nested children and the last segment names a
// property.
type Config struct {
	mu           sync.RWMutex
	doc          *tobjdocument.Document
	filePath     string
	format       Format
	envPrefix    string
	watchers     []ChangeHandler
	watching     bool
	lastModified time.Time
}

// ChangeHandler is called when configuration changes are detected
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, keyed like nested sections
	Watch     bool                   // Enable file watching (default: false)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if tobjstringx.IsBlank(filePath) {
		err := tobjerror.New("config file path cannot be empty").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
		if options.EnvPrefix != "" {
			err = err.WithDetail("envPrefix", options.EnvPrefix)
		}
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, tobjerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(tobjerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tobjerror.Wrap(err, "failed to read config file").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	doc, err := parseContent(content, format)
	if err != nil {
		return nil, tobjerror.Wrap(err, "failed to parse config file").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		if err := mergeDefaults(doc, options.Defaults); err != nil {
			return nil, tobjerror.Wrap(err, "failed to apply config defaults").
				WithCode(tobjerror.CodeConfigError).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
	}

	lastModified := time.Time{}
	if fileInfo, err := os.Stat(filePath); err == nil {
		lastModified = fileInfo.ModTime()
	}

	config := &Config{
		doc:          doc,
		filePath:     filePath,
		format:       format,
		envPrefix:    options.EnvPrefix,
		watchers:     make([]ChangeHandler, 0),
		watching:     options.Watch,
		lastModified: lastModified,
	}

	if options.Watch {
		go config.startWatching()
	}

	return config, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOBJ
	}

	doc, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tobjerror.Wrap(err, "failed to parse config from string").
			WithCode(tobjerror.CodeConfigError).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		doc:      doc,
		format:   format,
		watchers: make([]ChangeHandler, 0),
		watching: false,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(tobjfilex.Ext(filePath)) {
	case ".tobj":
		return FormatTOBJ
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOBJ
	}
}

// parseContent parses configuration content into a document based on format
func parseContent(content []byte, format Format) (*tobjdocument.Document, error) {
	switch format {
	case FormatTOBJ:
		return tobj.Parse(string(content))
	case FormatTOML, FormatYAML, FormatJSON:
		bridge, _ := format.bridgeFormat()
		return tobjconvert.Unmarshal(content, bridge)
	default:
		return nil, tobjerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(tobjerror.CodeUnsupportedFormat).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}
}

// mergeDefaults merges default values into the configuration document.
// Existing properties win over defaults; a valueless property counts as
// missing and is filled in. The defaults map is keyed like nested
// sections, so every leaf must sit inside at least one section.
func mergeDefaults(doc *tobjdocument.Document, defaults map[string]interface{}) error {
	for name, value := range defaults {
		section, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("default %q must be a section map, got %T", name, value)
		}
		if err := mergeNodeDefaults(doc.Ensure(name), section, name); err != nil {
			return err
		}
	}
	return nil
}

// mergeNodeDefaults fills missing properties of a node from a defaults map
func mergeNodeDefaults(node *tobjdocument.ObjectNode, defaults map[string]interface{}, path string) error {
	for key, value := range defaults {
		if section, ok := value.(map[string]interface{}); ok {
			if err := mergeNodeDefaults(node.EnsureChild(key), section, path+"."+key); err != nil {
				return err
			}
			continue
		}
		if existing, ok := node.Property(key); ok && !existing.IsNull() {
			continue
		}
		converted, err := toValue(value)
		if err != nil {
			return fmt.Errorf("default %q: %w", path+"."+key, err)
		}
		node.SetProperty(key, converted)
	}
	return nil
}

// toValue converts a plain Go value into a document value
func toValue(value interface{}) (tobjdocument.Value, error) {
	switch v := value.(type) {
	case tobjdocument.Value:
		return v, nil
	case nil:
		return tobjdocument.Null(), nil
	case string:
		return tobjdocument.String(v), nil
	case bool:
		return tobjdocument.Bool(v), nil
	case int:
		return tobjdocument.Int(int64(v)), nil
	case int32:
		return tobjdocument.Int(int64(v)), nil
	case int64:
		return tobjdocument.Int(v), nil
	case float32:
		return toValue(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return tobjdocument.Value{}, fmt.Errorf("non-finite float %v cannot be represented", v)
		}
		return tobjdocument.Float(v), nil
	case time.Duration:
		return tobjdocument.String(v.String()), nil
	case []string:
		items := make([]tobjdocument.Value, len(v))
		for i, s := range v {
			items[i] = tobjdocument.String(s)
		}
		return tobjdocument.List(items...), nil
	case []interface{}:
		items := make([]tobjdocument.Value, len(v))
		for i, item := range v {
			converted, err := toValue(item)
			if err != nil {
				return tobjdocument.Value{}, err
			}
			if converted.Kind() == tobjdocument.KindList {
				return tobjdocument.Value{}, fmt.Errorf("lists cannot be nested")
			}
			items[i] = converted
		}
		return tobjdocument.List(items...), nil
	default:
		return tobjdocument.Value{}, fmt.Errorf("unsupported value type %T", value)
	}
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check environment variable first
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value, ok := c.getValue(key)
	if !ok || value.IsNull() {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	return value.String()
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check environment variable first
	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	value, ok := c.getValue(key)
	if ok && !value.IsNull() {
		switch value.Kind() {
		case tobjdocument.KindInt:
			i, _ := value.AsInt()
			return int(i)
		case tobjdocument.KindFloat:
			f, _ := value.AsFloat()
			return int(f)
		case tobjdocument.KindString:
			s, _ := value.AsString()
			if intVal, err := strconv.Atoi(s); err == nil {
				return intVal
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check environment variable first
	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	value, ok := c.getValue(key)
	if ok && !value.IsNull() {
		switch value.Kind() {
		case tobjdocument.KindBool:
			b, _ := value.AsBool()
			return b
		case tobjdocument.KindString:
			s, _ := value.AsString()
			if boolVal, err := strconv.ParseBool(s); err == nil {
				return boolVal
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check environment variable first
	if envValue := c.getEnvValue(key); envValue != "" {
		if floatVal, err := strconv.ParseFloat(envValue, 64); err == nil {
			return floatVal
		}
	}

	value, ok := c.getValue(key)
	if ok && !value.IsNull() {
		switch value.Kind() {
		case tobjdocument.KindInt, tobjdocument.KindFloat:
			f, _ := value.AsFloat()
			return f
		case tobjdocument.KindString:
			s, _ := value.AsString()
			if floatVal, err := strconv.ParseFloat(s, 64); err == nil {
				return floatVal
			}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetDuration returns a time.Duration configuration value with optional
// default. String values use time.ParseDuration syntax, integer values
// count nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// Check environment variable first
	if envValue := c.getEnvValue(key); envValue != "" {
		if duration, err := time.ParseDuration(envValue); err == nil {
			return duration
		}
	}

	value, ok := c.getValue(key)
	if ok && !value.IsNull() {
		switch value.Kind() {
		case tobjdocument.KindString:
			s, _ := value.AsString()
			if duration, err := time.ParseDuration(s); err == nil {
				return duration
			}
		case tobjdocument.KindInt:
			i, _ := value.AsInt()
			return time.Duration(i)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice configuration value with
// optional default. A scalar string yields a one-element slice.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.getValue(key)
	if ok && !value.IsNull() {
		switch value.Kind() {
		case tobjdocument.KindList:
			items, _ := value.Items()
			result := make([]string, len(items))
			for i, item := range items {
				result[i] = item.String()
			}
			return result
		case tobjdocument.KindString:
			s, _ := value.AsString()
			return []string{s}
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// getValue resolves a dotted key against the document. The first
// segment names a top-level object, middle segments name nested
// children and the last segment names a property. Keys with fewer than
// two segments cannot resolve because the top level of a document holds
// objects only. Callers must hold the lock.
func (c *Config) getValue(key string) (tobjdocument.Value, bool) {
	segments := strings.Split(key, ".")
	if len(segments) < 2 {
		return tobjdocument.Value{}, false
	}

	node, ok := c.doc.Get(segments[0])
	if !ok {
		return tobjdocument.Value{}, false
	}
	for _, segment := range segments[1 : len(segments)-1] {
		node, ok = node.Child(segment)
		if !ok {
			return tobjdocument.Value{}, false
		}
	}

	return node.Property(segments[len(segments)-1])
}

// getNode resolves a dotted key where every segment names an object.
// Callers must hold the lock.
func (c *Config) getNode(key string) (*tobjdocument.ObjectNode, bool) {
	segments := strings.Split(key, ".")
	node, ok := c.doc.Get(segments[0])
	if !ok {
		return nil, false
	}
	for _, segment := range segments[1:] {
		node, ok = node.Child(segment)
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// getEnvValue retrieves the environment variable value for a configuration key
func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format.
// database.host -> DATABASE_HOST (with prefix MYAPP -> MYAPP_DATABASE_HOST)
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists. A valueless property counts
// as missing.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.getValue(key)
	return ok && !value.IsNull()
}

// Set sets a configuration value (runtime only, not persisted). The key
// must name at least an object and a property, e.g. "server.port".
func (c *Config) Set(key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.setValue(key, value)
}

// setValue converts and stores a value. Callers must hold the write lock.
func (c *Config) setValue(key string, value interface{}) error {
	segments := strings.Split(key, ".")
	if len(segments) < 2 {
		return tobjerror.New(fmt.Sprintf("key %q must name an object and a property, e.g. \"server.port\"", key)).
			WithCode(tobjerror.CodeInvalidInput).
			WithOperation("config.Set").
			WithDetail("key", key)
	}

	converted, err := toValue(value)
	if err != nil {
		return tobjerror.Wrap(err, fmt.Sprintf("cannot store value for key %q", key)).
			WithCode(tobjerror.CodeInvalidInput).
			WithOperation("config.Set").
			WithDetail("key", key)
	}

	node := c.doc.Ensure(segments[:len(segments)-1]...)
	node.SetProperty(segments[len(segments)-1], converted)
	return nil
}

// GetAll returns all configuration data as a nested map
func (c *Config) GetAll() (map[string]interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return tobjconvert.ToMap(c.doc)
}

// Document returns a snapshot of the configuration as a TOBJ document.
// Mutating the snapshot does not affect the configuration.
func (c *Config) Document() *tobjdocument.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.doc.Clone()
}

// Text renders the configuration in canonical TOBJ notation
func (c *Config) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return tobj.Serialize(c.doc)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// OnChange registers a change handler for configuration updates
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, handler)
}

// Convenience methods for shorter access patterns

// S is a short alias for GetString
func (c *Config) S(key string, defaultValue ...string) string {
	return c.GetString(key, defaultValue...)
}

// I is a short alias for GetInt
func (c *Config) I(key string, defaultValue ...int) int {
	return c.GetInt(key, defaultValue...)
}

// B is a short alias for GetBool
func (c *Config) B(key string, defaultValue ...bool) bool {
	return c.GetBool(key, defaultValue...)
}

// F is a short alias for GetFloat
func (c *Config) F(key string, defaultValue ...float64) float64 {
	return c.GetFloat(key, defaultValue...)
}

// D is a short alias for GetDuration
func (c *Config) D(key string, defaultValue ...time.Duration) time.Duration {
	return c.GetDuration(key, defaultValue...)
}

// SS is a short alias for GetStringSlice
func (c *Config) SS(key string, defaultValue ...[]string) []string {
	return c.GetStringSlice(key, defaultValue...)
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	if c.watching {
		parts = append(parts, "watching: true")
	}

	parts = append(parts, fmt.Sprintf("objects: %d}", c.doc.Len()))

	return strings.Join(parts, ", ")
}
