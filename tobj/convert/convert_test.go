// File: convert_test.go
// Title: Tests for Format Conversion Core
// Description: Unit tests for format detection, the Marshal/Unmarshal
//              dispatch and the nested-map exchange form.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial test implementation

package convert

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatTOML, "toml"},
		{FormatYAML, "yaml"},
		{FormatJSON, "json"},
		{FormatAuto, "auto"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.format.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.toml", FormatTOML},
		{"app.yaml", FormatYAML},
		{"app.yml", FormatYAML},
		{"data.json", FormatJSON},
		{"CONFIG.TOML", FormatTOML},
		{"/etc/app/settings.Yaml", FormatYAML},
		{"notes.txt", FormatAuto},
		{"noextension", FormatAuto},
		{"archive.tar.gz", FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectFormat(tt.path); got != tt.expected {
				t.Errorf("DetectFormat(%q) = %s, expected %s", tt.path, got, tt.expected)
			}
		})
	}
}

func TestMarshalUnmarshal_Dispatch(t *testing.T) {
	// Alphabetical names keep the TOML variant order-stable
	doc := tobjdocument.New()
	alpha := doc.Ensure("alpha")
	alpha.SetProperty("active", tobjdocument.Bool(true))
	alpha.SetProperty("count", tobjdocument.Int(3))
	beta := doc.Ensure("beta")
	beta.SetProperty("name", tobjdocument.String("second"))

	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Marshal(doc, format)
			if err != nil {
				t.Fatalf("Marshal(%s) failed: %v", format, err)
			}
			back, err := Unmarshal(data, format)
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", format, err)
			}
			if !doc.Equal(back) {
				t.Errorf("%s round trip changed the document:\n%s", format, string(data))
			}
		})
	}
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	_, err := Marshal(tobjdocument.New(), FormatAuto)
	if err == nil {
		t.Fatal("expected error for auto format")
	}

	var convErr *tobjerror.Error
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *tobjerror.Error, got %T", err)
	}
	if convErr.Code() != tobjerror.CodeUnsupportedFormat {
		t.Errorf("Code() = %s, expected %s", convErr.Code(), tobjerror.CodeUnsupportedFormat)
	}
}

func TestUnmarshal_UnsupportedFormat(t *testing.T) {
	_, err := Unmarshal([]byte("{}"), Format(42))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestToMap(t *testing.T) {
	doc := tobjdocument.New()
	user := doc.Ensure("user")
	user.SetProperty("name", tobjdocument.String("Alice"))
	user.SetProperty("age", tobjdocument.Int(30))
	user.SetProperty("active", tobjdocument.Bool(true))
	user.SetProperty("note", tobjdocument.Null())
	user.SetProperty("tags", tobjdocument.List(
		tobjdocument.String("admin"),
		tobjdocument.Int(1),
	))
	doc.Ensure("user", "profile").SetProperty("bio", tobjdocument.String("writes Go"))

	m, err := ToMap(doc)
	if err != nil {
		t.Fatalf("ToMap() failed: %v", err)
	}

	expected := map[string]interface{}{
		"user": map[string]interface{}{
			"name":   "Alice",
			"age":    int64(30),
			"active": true,
			"note":   nil,
			"tags":   []interface{}{"admin", int64(1)},
			"profile": map[string]interface{}{
				"bio": "writes Go",
			},
		},
	}

	if diff := cmp.Diff(expected, m); diff != "" {
		t.Errorf("ToMap() mismatch (-expected +got):\n%s", diff)
	}
}

func TestToMap_EmptyAndNil(t *testing.T) {
	m, err := ToMap(tobjdocument.New())
	if err != nil {
		t.Fatalf("ToMap() failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}

	m, err = ToMap(nil)
	if err != nil {
		t.Fatalf("ToMap(nil) failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("expected empty map for nil document, got %v", m)
	}
}

func TestToMap_NameCollision(t *testing.T) {
	doc := tobjdocument.New()
	a := doc.Ensure("a")
	a.SetProperty("x", tobjdocument.Int(1))
	doc.Ensure("a", "x")

	_, err := ToMap(doc)
	if err == nil {
		t.Fatal("expected error for property and child sharing a name")
	}
	if !strings.Contains(err.Error(), "both a property and a child object") {
		t.Errorf("unexpected error message: %v", err)
	}

	var convErr *tobjerror.Error
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *tobjerror.Error, got %T", err)
	}
	if convErr.Code() != tobjerror.CodeConvertError {
		t.Errorf("Code() = %s, expected %s", convErr.Code(), tobjerror.CodeConvertError)
	}
}

func TestFromMap(t *testing.T) {
	m := map[string]interface{}{
		"server": map[string]interface{}{
			"host":  "localhost",
			"port":  8080,
			"ratio": 0.5,
			"tags":  []string{"a", "b"},
			"tls": map[string]interface{}{
				"enabled": true,
				"cert":    nil,
			},
		},
	}

	doc, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}

	server, ok := doc.Get("server")
	if !ok {
		t.Fatal("server object missing")
	}
	if v, _ := server.Property("host"); !v.Equal(tobjdocument.String("localhost")) {
		t.Errorf("host = %v", v)
	}
	if v, _ := server.Property("port"); !v.Equal(tobjdocument.Int(8080)) {
		t.Errorf("port = %v", v)
	}
	if v, _ := server.Property("ratio"); !v.Equal(tobjdocument.Float(0.5)) {
		t.Errorf("ratio = %v", v)
	}
	if v, _ := server.Property("tags"); !v.Equal(tobjdocument.List(tobjdocument.String("a"), tobjdocument.String("b"))) {
		t.Errorf("tags = %v", v)
	}
	tls, ok := server.Child("tls")
	if !ok {
		t.Fatal("tls child missing")
	}
	if v, _ := tls.Property("cert"); !v.IsNull() {
		t.Errorf("cert = %v, expected null", v)
	}
}

func TestFromMap_RoundTripWithToMap(t *testing.T) {
	m := map[string]interface{}{
		"app": map[string]interface{}{
			"debug":   false,
			"name":    "demo",
			"retries": int64(3),
			"storage": map[string]interface{}{
				"path": "/var/lib/demo",
			},
		},
	}

	doc, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap() failed: %v", err)
	}
	back, err := ToMap(doc)
	if err != nil {
		t.Fatalf("ToMap() failed: %v", err)
	}

	if diff := cmp.Diff(m, back); diff != "" {
		t.Errorf("map round trip mismatch (-original +back):\n%s", diff)
	}
}

func TestFromMap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  map[string]interface{}
		errMsg string
	}{
		{
			name:   "top-level scalar",
			input:  map[string]interface{}{"x": 1},
			errMsg: "must be a map",
		},
		{
			name: "nested list",
			input: map[string]interface{}{
				"a": map[string]interface{}{"xs": []interface{}{[]interface{}{1}}},
			},
			errMsg: "lists hold scalars only",
		},
		{
			name: "map inside list",
			input: map[string]interface{}{
				"a": map[string]interface{}{"xs": []interface{}{map[string]interface{}{"b": 1}}},
			},
			errMsg: "lists hold scalars only",
		},
		{
			name: "unsupported type",
			input: map[string]interface{}{
				"a": map[string]interface{}{"t": time.Now()},
			},
			errMsg: "unsupported value type",
		},
		{
			name: "non-finite float",
			input: map[string]interface{}{
				"a": map[string]interface{}{"f": math.NaN()},
			},
			errMsg: "no text form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestFromMap_Empty(t *testing.T) {
	doc, err := FromMap(nil)
	if err != nil {
		t.Fatalf("FromMap(nil) failed: %v", err)
	}
	if !doc.IsEmpty() {
		t.Errorf("expected empty document, got %d objects", doc.Len())
	}
}
