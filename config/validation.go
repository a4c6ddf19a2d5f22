// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation for configuration values including
//              type checking, range validation, required fields, regex
//              patterns and struct binding.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "float", "bool", "duration", "[]string"
	Min      interface{} // Minimum value (for numbers) or length (for strings/lists)
	Max      interface{} // Maximum value (for numbers) or length (for strings/lists)
	Default  interface{} // Default value if not present
	Pattern  string      // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate validates the configuration against the provided rules.
// Defaults are applied for missing optional fields and whole-number
// floats are coerced in place for "int" typed fields, so Validate takes
// the write lock for its whole run.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	for key, rule := range rules {
		if err := c.validateField(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field. Callers must
// hold the write lock.
func (c *Config) validateField(key string, rule ValidationRule) error {
	value, ok := c.getValue(key)
	missing := !ok || value.IsNull()

	if rule.Required && missing {
		return fmt.Errorf("required field '%s' is missing", key)
	}

	if missing {
		if rule.Default != nil {
			if err := c.setValue(key, rule.Default); err != nil {
				return fmt.Errorf("cannot apply default for field '%s': %v", key, err)
			}
		}
		return nil
	}

	if rule.Type != "" {
		if err := c.validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if err := c.validateBounds(key, value, rule); err != nil {
		return err
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// validateType validates the kind of a configuration value. Callers
// must hold the write lock.
func (c *Config) validateType(key string, value tobjdocument.Value, expectedType string) error {
	kind := value.Kind()

	switch expectedType {
	case "string":
		if kind != tobjdocument.KindString {
			return fmt.Errorf("field '%s' must be a string, got %s", key, kind)
		}

	case "int":
		switch kind {
		case tobjdocument.KindInt:
			// Valid
		case tobjdocument.KindFloat:
			// Whole-number floats are coerced to integers in place
			f, _ := value.AsFloat()
			if f == float64(int64(f)) {
				if err := c.setValue(key, int64(f)); err != nil {
					return fmt.Errorf("field '%s': %v", key, err)
				}
			} else {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %s", key, kind)
		}

	case "float":
		if kind != tobjdocument.KindFloat && kind != tobjdocument.KindInt {
			return fmt.Errorf("field '%s' must be a float, got %s", key, kind)
		}

	case "bool":
		if kind != tobjdocument.KindBool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, kind)
		}

	case "duration":
		switch kind {
		case tobjdocument.KindString:
			s, _ := value.AsString()
			if _, err := time.ParseDuration(s); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration string, got '%s'", key, s)
			}
		case tobjdocument.KindInt:
			// Integer durations count nanoseconds
		default:
			return fmt.Errorf("field '%s' must be a duration, got %s", key, kind)
		}

	case "[]string":
		if kind != tobjdocument.KindList && kind != tobjdocument.KindString {
			return fmt.Errorf("field '%s' must be a list of strings, got %s", key, kind)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}

// validateBounds validates numeric bounds and string/list lengths
func (c *Config) validateBounds(key string, value tobjdocument.Value, rule ValidationRule) error {
	if rule.Min != nil {
		if err := validateMin(key, value, rule.Min); err != nil {
			return err
		}
	}

	if rule.Max != nil {
		if err := validateMax(key, value, rule.Max); err != nil {
			return err
		}
	}

	return nil
}

// validateMin validates minimum values or lengths
func validateMin(key string, value tobjdocument.Value, min interface{}) error {
	switch value.Kind() {
	case tobjdocument.KindInt:
		intVal, _ := value.AsInt()
		if minVal, ok := boundInt(min); ok && intVal < minVal {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, intVal, minVal)
		}

	case tobjdocument.KindFloat:
		floatVal, _ := value.AsFloat()
		if minVal, ok := boundFloat(min); ok && floatVal < minVal {
			return fmt.Errorf("field '%s' value %g is less than minimum %g", key, floatVal, minVal)
		}

	case tobjdocument.KindString:
		s, _ := value.AsString()
		if minLen, ok := boundInt(min); ok && int64(len(s)) < minLen {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, len(s), minLen)
		}

	case tobjdocument.KindList:
		if minLen, ok := boundInt(min); ok && int64(value.Len()) < minLen {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, value.Len(), minLen)
		}
	}

	return nil
}

// validateMax validates maximum values or lengths
func validateMax(key string, value tobjdocument.Value, max interface{}) error {
	switch value.Kind() {
	case tobjdocument.KindInt:
		intVal, _ := value.AsInt()
		if maxVal, ok := boundInt(max); ok && intVal > maxVal {
			return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, intVal, maxVal)
		}

	case tobjdocument.KindFloat:
		floatVal, _ := value.AsFloat()
		if maxVal, ok := boundFloat(max); ok && floatVal > maxVal {
			return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, floatVal, maxVal)
		}

	case tobjdocument.KindString:
		s, _ := value.AsString()
		if maxLen, ok := boundInt(max); ok && int64(len(s)) > maxLen {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, len(s), maxLen)
		}

	case tobjdocument.KindList:
		if maxLen, ok := boundInt(max); ok && int64(value.Len()) > maxLen {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, value.Len(), maxLen)
		}
	}

	return nil
}

// boundInt coerces a rule bound to an integer
func boundInt(bound interface{}) (int64, bool) {
	switch v := bound.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// boundFloat coerces a rule bound to a float
func boundFloat(bound interface{}) (float64, bool) {
	switch v := bound.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// validatePattern validates string values against regex patterns
func validatePattern(key string, value tobjdocument.Value, pattern string) error {
	if value.Kind() != tobjdocument.KindString {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}
	strValue, _ := value.AsString()

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %v", key, err)
	}

	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}

	return nil
}

// BindToStruct binds the properties of a configuration section to a Go
// struct. The key prefix names the section object; the top level of a
// document holds objects only, so the prefix cannot be empty. Field
// names map via the "config" struct tag or the lowercased field name,
// and fields tagged `validate:"required"` must be present.
func (c *Config) BindToStruct(keyPrefix string, target interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Struct {
		return tobjerror.New("target must be a pointer to struct").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("config.BindToStruct")
	}

	if tobjstringx.IsBlank(keyPrefix) {
		return tobjerror.New("key prefix must name a configuration section").
			WithCode(tobjerror.CodeValidationFailed).
			WithOperation("config.BindToStruct")
	}

	node, ok := c.getNode(keyPrefix)
	if !ok {
		return tobjerror.New(fmt.Sprintf("configuration section '%s' not found", keyPrefix)).
			WithCode(tobjerror.CodeNotFound).
			WithOperation("config.BindToStruct").
			WithDetail("keyPrefix", keyPrefix)
	}

	targetStruct := targetValue.Elem()
	targetType := targetStruct.Type()

	for i := 0; i < targetStruct.NumField(); i++ {
		field := targetStruct.Field(i)
		fieldType := targetType.Field(i)

		if !field.CanSet() {
			continue
		}

		configKey := fieldType.Tag.Get("config")
		if configKey == "" {
			configKey = strings.ToLower(fieldType.Name)
		}
		if configKey == "-" {
			continue
		}

		configValue, ok := node.Property(configKey)
		if !ok || configValue.IsNull() {
			validate := fieldType.Tag.Get("validate")
			if strings.Contains(validate, "required") {
				return tobjerror.New(fmt.Sprintf("required field '%s' not found in configuration", configKey)).
					WithCode(tobjerror.CodeValidationFailed).
					WithOperation("config.BindToStruct").
					WithDetail("configKey", configKey)
			}
			continue
		}

		if err := setFieldValue(field, configValue); err != nil {
			return tobjerror.Wrap(err, fmt.Sprintf("error setting field '%s'", fieldType.Name)).
				WithCode(tobjerror.CodeConfigError).
				WithOperation("config.BindToStruct").
				WithDetail("fieldName", fieldType.Name)
		}
	}

	return nil
}

// setFieldValue sets a struct field value from a configuration value
func setFieldValue(field reflect.Value, value tobjdocument.Value) error {
	// Duration fields accept strings in time.ParseDuration syntax
	if field.Type() == reflect.TypeOf(time.Duration(0)) && value.Kind() == tobjdocument.KindString {
		s, _ := value.AsString()
		duration, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("cannot convert '%s' to duration", s)
		}
		field.SetInt(int64(duration))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var intVal int64
		switch value.Kind() {
		case tobjdocument.KindInt:
			intVal, _ = value.AsInt()
		case tobjdocument.KindFloat:
			f, _ := value.AsFloat()
			intVal = int64(f)
		case tobjdocument.KindString:
			s, _ := value.AsString()
			parsed, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("cannot convert '%s' to integer", s)
			}
			intVal = parsed
		default:
			return fmt.Errorf("cannot convert %s to integer", value.Kind())
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		var floatVal float64
		switch value.Kind() {
		case tobjdocument.KindInt, tobjdocument.KindFloat:
			floatVal, _ = value.AsFloat()
		case tobjdocument.KindString:
			s, _ := value.AsString()
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("cannot convert '%s' to float", s)
			}
			floatVal = parsed
		default:
			return fmt.Errorf("cannot convert %s to float", value.Kind())
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		var boolVal bool
		switch value.Kind() {
		case tobjdocument.KindBool:
			boolVal, _ = value.AsBool()
		case tobjdocument.KindString:
			s, _ := value.AsString()
			parsed, err := strconv.ParseBool(s)
			if err != nil {
				return fmt.Errorf("cannot convert '%s' to boolean", s)
			}
			boolVal = parsed
		default:
			return fmt.Errorf("cannot convert %s to boolean", value.Kind())
		}
		field.SetBool(boolVal)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		var stringSlice []string
		switch value.Kind() {
		case tobjdocument.KindList:
			items, _ := value.Items()
			stringSlice = make([]string, len(items))
			for i, item := range items {
				stringSlice[i] = item.String()
			}
		case tobjdocument.KindString:
			s, _ := value.AsString()
			stringSlice = []string{s}
		default:
			return fmt.Errorf("cannot convert %s to []string", value.Kind())
		}
		field.Set(reflect.ValueOf(stringSlice))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
