// File: doc.go
// Title: Package Documentation for Format Conversion
// Description: Provides package-level documentation for the bridges
//              between Document trees and TOML, YAML and JSON.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial package documentation

/*
Package convert bridges Document trees to and from the neighboring
data formats TOML, YAML and JSON.

The bridges are deliberately strict: they convert what both sides can
represent and reject the rest with a structured error instead of
guessing. A document is a collection of named objects, so every
top-level value on the foreign side must be a table, mapping or
object. Lists hold scalars only; nested arrays, arrays of tables and
datetimes have no document form and fail the conversion.

Supported operations per format:

• JSON: ToJSON, ToJSONIndent, FromJSON. Both directions preserve
  member order (output is written member by member, input is read
  through the json.Decoder token stream). Numbers become integers
  when they parse as such.

• YAML: ToYAML, FromYAML. Both directions preserve mapping order via
  the yaml.Node API.

• TOML: ToTOML, FromTOML. Decoding preserves document order via the
  decoder metadata; encoding writes keys in sorted order.

The shared core offers the Format enum with DetectFormat for
extension-based detection, Marshal/Unmarshal dispatching on a Format,
and ToMap/FromMap exchanging documents with nested maps of native Go
values.

Basic usage:

	data, err := convert.ToYAML(doc)
	if err != nil {
		return err
	}

	doc, err := convert.Unmarshal(raw, convert.DetectFormat("config.toml"))
	if err != nil {
		return err
	}

Conversion failures carry the CONVERT_ERROR code and name the dotted
path of the offending value.
*/
package convert
