// File: tobj.go
// Title: TOBJ Main Interface and Engine
// Description: Provides the main TOBJ engine and high-level API for
//              parsing and serializing TOBJ notation. Integrates the
//              parser and serializer components and adds reader,
//              writer and file conveniences.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial TOBJ engine implementation

package tobj

import (
	"errors"
	"fmt"
	"io"
	"sync"

	tobjerror "github.com/tobj-format/tobj-go/core/error"
	tobjlog "github.com/tobj-format/tobj-go/core/log"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjparser "github.com/tobj-format/tobj-go/tobj/parser"
	tobjserializer "github.com/tobj-format/tobj-go/tobj/serializer"
	tobjfilex "github.com/tobj-format/tobj-go/utils/filex"
)

// Engine represents the main TOBJ engine that coordinates parsing and
// serialization
type Engine struct {
	parser     *tobjparser.Parser
	serializer *tobjserializer.Serializer
	logger     *tobjlog.Logger
	options    Options
}

// Options configures the TOBJ engine behavior
type Options struct {
	// Logger for TOBJ operations (optional, defaults to default logger)
	Logger *tobjlog.Logger

	// LogLevel for TOBJ-specific logging
	LogLevel tobjlog.Level

	// MaxInputLength limits input text length (default: 1 MiB)
	MaxInputLength int

	// Filename labels parse diagnostics with their source (optional)
	Filename string
}

// NewEngine creates a new TOBJ engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:         tobjlog.GetDefault(),
		LogLevel:       tobjlog.LevelInfo,
		MaxInputLength: tobjparser.DefaultMaxInputLength,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		options.Filename = provided.Filename
	}

	// Create logger with TOBJ context
	logger := options.Logger.WithField("component", "tobj-engine")

	// Create parser
	p, err := tobjparser.New(tobjparser.Options{
		Logger:         logger,
		MaxInputLength: options.MaxInputLength,
		Filename:       options.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TOBJ parser: %w", err)
	}

	// Create serializer
	s, err := tobjserializer.New(tobjserializer.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TOBJ serializer: %w", err)
	}

	engine := &Engine{
		parser:     p,
		serializer: s,
		logger:     logger,
		options:    options,
	}

	logger.Info("TOBJ engine initialized", tobjlog.Fields{
		"maxInputLength": options.MaxInputLength,
	})

	return engine, nil
}

// Parse parses TOBJ text into a document. Parse failures come back as
// structured errors carrying the matching notation code; the
// underlying ParseError stays reachable through errors.As for callers
// that want positions and source excerpts.
func (e *Engine) Parse(text string) (*tobjdocument.Document, error) {
	timer := e.logger.StartTimer("tobj_parse")

	doc, err := e.parser.Parse(text)
	if err != nil {
		timer.StopWithError(err)
		return nil, e.wrapParseError(err)
	}

	timer.Checkpoint("text_parsed")

	if e.logger.IsLevelEnabled(tobjlog.LevelDebug) {
		collected := tobjdocument.CollectNodes(doc)
		e.logger.Debug("TOBJ text parsed", tobjlog.Fields{
			"objects":    len(collected.Objects),
			"properties": len(collected.Properties),
		})
	}

	timer.Stop()
	return doc, nil
}

// Serialize renders the document as canonical TOBJ text
func (e *Engine) Serialize(doc *tobjdocument.Document) string {
	return e.serializer.Serialize(doc)
}

// ValidateText checks whether text is valid TOBJ notation
func (e *Engine) ValidateText(text string) error {
	_, err := e.Parse(text)
	return err
}

// Load reads all input from the reader and parses it
func (e *Engine) Load(r io.Reader) (*tobjdocument.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, tobjerror.Wrap(err, "failed to read TOBJ input").
			WithCode(tobjerror.CodeIOError).
			WithOperation("tobj.Load")
	}
	return e.Parse(string(data))
}

// Dump serializes the document and writes it to the writer
func (e *Engine) Dump(doc *tobjdocument.Document, w io.Writer) error {
	if _, err := io.WriteString(w, e.Serialize(doc)); err != nil {
		return tobjerror.Wrap(err, "failed to write TOBJ output").
			WithCode(tobjerror.CodeIOError).
			WithOperation("tobj.Dump")
	}
	return nil
}

// LoadFile reads and parses a TOBJ file. Parse diagnostics are
// labeled with the given path.
func (e *Engine) LoadFile(path string) (*tobjdocument.Document, error) {
	if !tobjfilex.IsFile(path) {
		return nil, tobjerror.New(fmt.Sprintf("TOBJ file not found: %s", path)).
			WithCode(tobjerror.CodeNotFound).
			WithOperation("tobj.LoadFile").
			WithDetail("path", path)
	}

	if size, err := tobjfilex.Size(path); err == nil && size > int64(e.options.MaxInputLength) {
		return nil, tobjerror.New(fmt.Sprintf("TOBJ file exceeds maximum length: %d > %d", size, e.options.MaxInputLength)).
			WithCode(tobjerror.CodeInvalidInput).
			WithOperation("tobj.LoadFile").
			WithDetail("path", path)
	}

	text, err := tobjfilex.ReadString(path)
	if err != nil {
		return nil, tobjerror.Wrap(err, "failed to read TOBJ file").
			WithCode(tobjerror.CodeIOError).
			WithOperation("tobj.LoadFile").
			WithDetail("path", path)
	}

	// A parser of its own so diagnostics name this file
	p, err := tobjparser.New(tobjparser.Options{
		Logger:         e.logger,
		MaxInputLength: e.options.MaxInputLength,
		Filename:       path,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TOBJ parser: %w", err)
	}

	doc, err := p.Parse(text)
	if err != nil {
		return nil, e.wrapParseError(err)
	}
	return doc, nil
}

// DumpFile serializes the document into a file, creating parent
// directories as needed
func (e *Engine) DumpFile(doc *tobjdocument.Document, path string) error {
	dir := tobjfilex.Dir(path)
	if dir != "" && dir != "." && !tobjfilex.IsDir(dir) {
		if err := tobjfilex.MkdirAll(dir, 0o755); err != nil {
			return tobjerror.Wrap(err, "failed to create directory for TOBJ file").
				WithCode(tobjerror.CodeIOError).
				WithOperation("tobj.DumpFile").
				WithDetail("path", path)
		}
	}

	if err := tobjfilex.WriteString(path, e.Serialize(doc), 0o644); err != nil {
		return tobjerror.Wrap(err, "failed to write TOBJ file").
			WithCode(tobjerror.CodeIOError).
			WithOperation("tobj.DumpFile").
			WithDetail("path", path)
	}
	return nil
}

// wrapParseError wraps parsing errors with the matching notation code
func (e *Engine) wrapParseError(err error) error {
	var parseErr *tobjparser.ParseError
	if errors.As(err, &parseErr) {
		wrapped := tobjerror.Wrap(err, "failed to parse TOBJ text").
			WithCode(parseErr.Code()).
			WithOperation("tobj.Parse").
			WithDetail("line", parseErr.Pos.Line+1).
			WithDetail("column", parseErr.Pos.Column+1)
		if parseErr.Filename != "" {
			wrapped = wrapped.WithDetail("filename", parseErr.Filename)
		}
		return wrapped
	}

	return tobjerror.Wrap(err, "failed to parse TOBJ text").
		WithCode(tobjerror.CodeInvalidInput).
		WithOperation("tobj.Parse")
}

// Default engine for the package-level convenience functions

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

func getDefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		// Defaults cannot fail validation
		defaultEngine, _ = NewEngine()
	})
	return defaultEngine
}

// Parse parses TOBJ text using the default engine
func Parse(text string) (*tobjdocument.Document, error) {
	return getDefaultEngine().Parse(text)
}

// Serialize renders the document as TOBJ text using the default engine
func Serialize(doc *tobjdocument.Document) string {
	return getDefaultEngine().Serialize(doc)
}

// ValidateText checks whether text is valid TOBJ notation using the
// default engine
func ValidateText(text string) error {
	return getDefaultEngine().ValidateText(text)
}

// Load reads and parses TOBJ input using the default engine
func Load(r io.Reader) (*tobjdocument.Document, error) {
	return getDefaultEngine().Load(r)
}

// Dump serializes the document to a writer using the default engine
func Dump(doc *tobjdocument.Document, w io.Writer) error {
	return getDefaultEngine().Dump(doc, w)
}

// LoadFile reads and parses a TOBJ file using the default engine
func LoadFile(path string) (*tobjdocument.Document, error) {
	return getDefaultEngine().LoadFile(path)
}

// DumpFile writes the document to a file using the default engine
func DumpFile(doc *tobjdocument.Document, path string) error {
	return getDefaultEngine().DumpFile(doc, path)
}
