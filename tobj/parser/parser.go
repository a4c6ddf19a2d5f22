// File: parser.go
// Title: TOBJ Recursive Descent Parser
// Description: Implements parsing of TOBJ notation into Document trees.
//              Handles object declarations with dotted paths, property
//              declarations with scalar and list values, and dangling
//              list continuations.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"

	tobjlog "github.com/tobj-format/tobj-go/core/log"
	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// DefaultMaxInputLength is the maximum accepted input size when the
// options do not set one (1 MiB)
const DefaultMaxInputLength = 1 << 20

// Parser implements recursive descent parsing for TOBJ. The struct
// holds configuration only; every Parse call runs on its own state,
// so a single parser may be shared between goroutines.
type Parser struct {
	logger  *tobjlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *tobjlog.Logger
	MaxInputLength int
	Filename       string // Optional source name carried into errors
}

// parseRun is the state of a single Parse call: the token cursor and
// the document under construction. node is the object opened by the
// most recent '*' declaration, lastProp the property declared most
// recently on it; both reset when a new object is opened.
type parseRun struct {
	lexer    *Lexer
	current  Token // Current token
	previous Token // Previous token

	lines    []string // Source lines for error reports
	filename string

	doc      *tobjdocument.Document
	node     *tobjdocument.ObjectNode
	lastProp string
	hasProp  bool
}

// New creates a new TOBJ parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = tobjlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("maximum input length cannot be negative: %d", opts.MaxInputLength)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "tobj-parser"),
		options: opts,
	}, nil
}

// Parse parses TOBJ text and returns the resulting document. Empty
// input yields an empty document. Parse errors are returned as
// *ParseError values carrying position and source line.
func (p *Parser) Parse(input string) (*tobjdocument.Document, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	// Each call owns its run exclusively
	r := &parseRun{
		lexer:    NewLexer(input),
		lines:    tobjstringx.SplitLines(input),
		filename: p.options.Filename,
		doc:      tobjdocument.New(),
	}
	r.advance() // Load first token

	p.logger.Debug("Starting TOBJ parsing", tobjlog.Fields{
		"length":  len(input),
		"preview": tobjstringx.Truncate(input, 80, "..."),
	})

	if err := r.parseDocument(); err != nil {
		p.logger.Warn("TOBJ parsing failed", tobjlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("TOBJ parsing completed successfully", tobjlog.Fields{
		"objects": r.doc.Len(),
	})

	return r.doc, nil
}

// parseDocument parses a complete document: any number of object
// declarations, properties, and list continuations up to EOF
func (r *parseRun) parseDocument() error {
	for r.current.Type != TokenEOF {
		switch r.current.Type {
		case TokenError:
			return r.lexError()
		case TokenStar:
			if err := r.parseObjectDecl(); err != nil {
				return err
			}
		case TokenArrow:
			if err := r.parseProperty(); err != nil {
				return err
			}
		case TokenDash:
			if err := r.parseDanglingDash(); err != nil {
				return err
			}
		default:
			return r.syntaxError(fmt.Sprintf("unexpected token %s, expected '*', '>' or '-'", r.current.Type))
		}
	}

	return nil
}

// parseObjectDecl parses an object declaration: '*' followed by a
// dotted path. Missing intermediate objects are created; re-declaring
// an existing path merges into it.
func (r *parseRun) parseObjectDecl() error {
	r.advance() // consume '*'

	segments, err := r.parsePath()
	if err != nil {
		return err
	}

	r.node = r.doc.Ensure(segments...)
	r.lastProp = ""
	r.hasProp = false

	return nil
}

// parsePath parses a dotted object path into its segments
func (r *parseRun) parsePath() ([]string, error) {
	if r.current.Type == TokenError {
		return nil, r.lexError()
	}
	if r.current.Type == TokenDot {
		return nil, r.pathError("object path cannot start with '.'")
	}

	segment, ok := r.pathSegment()
	if !ok {
		return nil, r.pathError(fmt.Sprintf("expected object name after '*', got %s", r.current.Type))
	}
	segments := []string{segment}

	for r.current.Type == TokenDot {
		r.advance() // consume '.'

		switch r.current.Type {
		case TokenError:
			return nil, r.lexError()
		case TokenDot:
			return nil, r.pathError("empty segment in object path")
		}

		segment, ok := r.pathSegment()
		if !ok {
			return nil, r.pathError("object path cannot end with '.'")
		}
		segments = append(segments, segment)
	}

	return segments, nil
}

// pathSegment consumes one path segment. Keyword and number tokens are
// accepted as segment names, so paths like *true or *v1.2 stay usable.
func (r *parseRun) pathSegment() (string, bool) {
	switch r.current.Type {
	case TokenIdentifier, TokenNumber, TokenTrue, TokenFalse, TokenNothing:
		segment := r.current.Value
		r.advance()
		return segment, true
	default:
		return "", false
	}
}

// parseProperty parses a property declaration: '>' followed by a key
// and an optional value. A property without a value holds Null.
func (r *parseRun) parseProperty() error {
	arrowPos := r.current.Pos

	if r.node == nil {
		return r.errorAt(ContextError, "property declared before any object", arrowPos)
	}

	r.advance() // consume '>'

	key, err := r.parsePropertyKey()
	if err != nil {
		return err
	}

	value, err := r.parsePropertyValue()
	if err != nil {
		return err
	}

	r.node.SetProperty(key, value)
	r.lastProp = key
	r.hasProp = true

	return nil
}

// parsePropertyKey parses a property key: an identifier or a quoted
// string. Keywords cannot be used unquoted.
func (r *parseRun) parsePropertyKey() (string, error) {
	switch r.current.Type {
	case TokenIdentifier, TokenString:
		key := r.current.Value
		r.advance()
		return key, nil
	case TokenTrue, TokenFalse, TokenNothing:
		return "", r.syntaxError(fmt.Sprintf("cannot use keyword '%s' as a property key; write \"%s\" to use it as a name",
			r.current.Value, r.current.Value))
	case TokenError:
		return "", r.lexError()
	default:
		return "", r.syntaxError(fmt.Sprintf("expected property key (identifier or string), got %s", r.current.Type))
	}
}

// parsePropertyValue parses the value part of a property declaration.
// A following '*', '>' or EOF means the property was declared without
// a value; a '-' starts an inline list.
func (r *parseRun) parsePropertyValue() (tobjdocument.Value, error) {
	switch r.current.Type {
	case TokenStar, TokenArrow, TokenEOF:
		return tobjdocument.Null(), nil
	case TokenDash:
		return r.parseListItems()
	default:
		return r.parseScalar()
	}
}

// parseListItems parses a run of '-' items into a list value
func (r *parseRun) parseListItems() (tobjdocument.Value, error) {
	var items []tobjdocument.Value

	for r.current.Type == TokenDash {
		r.advance() // consume '-'

		item, err := r.parseScalar()
		if err != nil {
			return tobjdocument.Value{}, err
		}
		items = append(items, item)
	}

	return tobjdocument.List(items...), nil
}

// parseDanglingDash parses a '-' item that continues the most recently
// declared property after other declarations interrupted the list. A
// scalar property is promoted to a two-element list.
func (r *parseRun) parseDanglingDash() error {
	dashPos := r.current.Pos

	if r.node == nil {
		return r.errorAt(ContextError, "list item declared before any object", dashPos)
	}
	if !r.hasProp {
		return r.errorAt(ContextError, "list item without a preceding property", dashPos)
	}

	r.advance() // consume '-'

	item, err := r.parseScalar()
	if err != nil {
		return err
	}

	existing, _ := r.node.Property(r.lastProp)
	if existing.Kind() == tobjdocument.KindList {
		items, _ := existing.Items()
		items = append(items, item)
		r.node.SetProperty(r.lastProp, tobjdocument.List(items...))
	} else {
		r.node.SetProperty(r.lastProp, tobjdocument.List(existing, item))
	}

	return nil
}

// parseScalar parses a single scalar value token
func (r *parseRun) parseScalar() (tobjdocument.Value, error) {
	switch r.current.Type {
	case TokenString:
		value := tobjdocument.String(r.current.Value)
		r.advance()
		return value, nil

	case TokenNumber:
		return r.parseNumber()

	case TokenTrue:
		r.advance()
		return tobjdocument.Bool(true), nil

	case TokenFalse:
		r.advance()
		return tobjdocument.Bool(false), nil

	case TokenNothing:
		r.advance()
		return tobjdocument.Null(), nil

	case TokenIdentifier:
		// A bare word is stored as its literal string
		value := tobjdocument.String(r.current.Value)
		r.advance()
		return value, nil

	case TokenError:
		return tobjdocument.Value{}, r.lexError()

	default:
		return tobjdocument.Value{}, r.syntaxError(fmt.Sprintf("expected value, got %s", r.current.Type))
	}
}

// parseNumber converts a number token into an integer or float value.
// Literals with a decimal point become floats, all others integers.
func (r *parseRun) parseNumber() (tobjdocument.Value, error) {
	raw := r.current.Value

	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return tobjdocument.Value{}, r.syntaxError(fmt.Sprintf("invalid number: %s", raw))
		}
		r.advance()
		return tobjdocument.Float(f), nil
	}

	i, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return tobjdocument.Value{}, r.syntaxError(fmt.Sprintf("number out of range: %s", raw))
	}
	r.advance()
	return tobjdocument.Int(i), nil
}

// advance moves to the next token
func (r *parseRun) advance() {
	r.previous = r.current
	r.current = r.lexer.NextToken()
}

// syntaxError creates a syntax error at the current token
func (r *parseRun) syntaxError(message string) error {
	return r.errorAt(SyntaxError, message, r.current.Pos)
}

// pathError creates a path error at the current token
func (r *parseRun) pathError(message string) error {
	return r.errorAt(PathError, message, r.current.Pos)
}

// lexError converts the current error token into a syntax error
func (r *parseRun) lexError() error {
	return r.errorAt(SyntaxError, r.current.Value, r.current.Pos)
}

// errorAt creates a parse error at the given position, capturing the
// offending source line and the configured filename
func (r *parseRun) errorAt(kind ErrorKind, message string, pos tobjdocument.Position) error {
	return &ParseError{
		Kind:       kind,
		Message:    message,
		Pos:        pos,
		SourceLine: r.sourceLine(pos.Line),
		Filename:   r.filename,
	}
}

// sourceLine returns the text of the given 0-based source line
func (r *parseRun) sourceLine(line int) string {
	if line < 0 || line >= len(r.lines) {
		return ""
	}
	return r.lines[line]
}
