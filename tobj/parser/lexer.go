// File: lexer.go
// Title: TOBJ Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of TOBJ parsing.
//              Converts TOBJ notation text into streams of tokens for
//              the parser. Handles sigils, quoted strings with escape
//              sequences, numbers, keywords, comments, and discardable
//              ellipsis markers, and provides position information for
//              error reporting.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"

	tobjdocument "github.com/tobj-format/tobj-go/tobj/document"
	tobjstringx "github.com/tobj-format/tobj-go/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Identifiers and literals
	TokenIdentifier // server, backup_dir, $price
	TokenString     // "string literal"
	TokenNumber     // 42, -3.14

	// Sigils
	TokenStar  // *
	TokenArrow // >
	TokenDash  // -
	TokenDot   // .

	// Keywords
	TokenTrue    // true
	TokenFalse   // false
	TokenNothing // nothing
)

// Token represents a lexical token with position information.
// Error tokens carry their diagnostic message in Value.
type Token struct {
	Type  TokenType             // Token type
	Value string                // Token text (decoded for strings)
	Pos   tobjdocument.Position // Position of the first character
	End   int                   // Byte offset just past the token
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenStar:
		return "STAR"
	case TokenArrow:
		return "ARROW"
	case TokenDash:
		return "DASH"
	case TokenDot:
		return "DOT"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenNothing:
		return "NOTHING"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of TOBJ input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (0-based)
	column   int    // Current column number (0-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   0,
		column: -1, // First readChar lands on column 0
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. Whitespace,
// comments, and ellipsis markers between tokens are discarded.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipIgnored()

	// Save current position for token
	pos := l.currentPosition()

	switch l.ch {
	case '*':
		tok = newToken(TokenStar, l.ch, pos)
	case '>':
		tok = newToken(TokenArrow, l.ch, pos)
	case '-':
		if isDigit(l.peekChar()) {
			return l.readNumber(pos) // Early return to avoid readChar()
		}
		tok = newToken(TokenDash, l.ch, pos)
	case '.':
		tok = newToken(TokenDot, l.ch, pos)
	case '"':
		return l.readString(pos) // Early return to avoid readChar()
	case '/':
		// "//" comments are consumed by skipIgnored, so a '/' seen
		// here is a lone slash
		tok = Token{Type: TokenError, Value: "unexpected character '/'", Pos: pos, End: pos.Offset + 1}
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Pos: pos, End: pos.Offset}
		return tok
	default:
		if isDigit(l.ch) {
			return l.readNumber(pos) // Early return to avoid readChar()
		}
		return l.readIdentifier(pos) // Early return to avoid readChar()
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenError {
			return tokens, &ParseError{
				Kind:       SyntaxError,
				Message:    tok.Value,
				Pos:        tok.Pos,
				SourceLine: lineAt(l.input, tok.Pos.Line),
			}
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking. The newline character itself
	// is never a token start, so it may carry the next line's position.
	if l.ch == '\n' {
		l.line++
		l.column = -1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// peekCharAt returns the character offset positions after the current
// one without advancing
func (l *Lexer) peekCharAt(offset int) byte {
	pos := l.position + offset
	if pos >= len(l.input) {
		return 0
	}
	return l.input[pos]
}

// currentPosition returns the position of the current character
func (l *Lexer) currentPosition() tobjdocument.Position {
	return tobjdocument.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// readIdentifier reads an identifier: a maximal run of characters that
// are not whitespace and not reserved for other tokens
func (l *Lexer) readIdentifier(pos tobjdocument.Position) Token {
	start := l.position
	for isIdentifierChar(l.ch) {
		l.readChar()
	}

	value := l.input[start:l.position]
	return Token{Type: lookupIdent(value), Value: value, Pos: pos, End: l.position}
}

// readNumber reads a numeric literal (integer or float), including an
// optional leading minus sign
func (l *Lexer) readNumber(pos tobjdocument.Position) Token {
	start := l.position

	if l.ch == '-' {
		l.readChar()
	}

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// A decimal point counts only when a digit follows; "12." lexes
	// as NUMBER(12) DOT
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return Token{Type: TokenNumber, Value: l.input[start:l.position], Pos: pos, End: l.position}
}

// readString reads a double-quoted string literal and decodes its
// escape sequences. Raw newlines inside the quotes are kept verbatim.
// An unterminated string yields an error token at the opening quote.
func (l *Lexer) readString(pos tobjdocument.Position) Token {
	var value strings.Builder

	for {
		l.readChar()

		switch l.ch {
		case '"':
			l.readChar() // consume closing quote
			return Token{Type: TokenString, Value: value.String(), Pos: pos, End: l.position}
		case 0:
			return Token{Type: TokenError, Value: "unterminated string (missing closing quote)", Pos: pos, End: l.position}
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				value.WriteByte('\n')
			case 't':
				value.WriteByte('\t')
			case '"':
				value.WriteByte('"')
			case '\\':
				value.WriteByte('\\')
			case 0:
				return Token{Type: TokenError, Value: "unterminated string (missing closing quote)", Pos: pos, End: l.position}
			default:
				// Unknown escape: drop the backslash, keep the character
				value.WriteByte(l.ch)
			}
		default:
			value.WriteByte(l.ch)
		}
	}
}

// skipIgnored skips whitespace, comments, and discardable ellipsis
// markers. Both comment styles run to the end of the line.
func (l *Lexer) skipIgnored() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '#':
			l.skipComment()
		case l.ch == '/' && l.peekChar() == '/':
			l.skipComment()
		case l.ch == '.' && l.peekCharAt(1) == '.' && l.peekCharAt(2) == '.':
			// Discard exactly three dots; lexing continues right after
			l.readChar()
			l.readChar()
			l.readChar()
		default:
			return
		}
	}
}

// skipComment skips to the end of the current line
func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new single-character token
func newToken(tokenType TokenType, ch byte, pos tobjdocument.Position) Token {
	return Token{
		Type:  tokenType,
		Value: string(ch),
		Pos:   pos,
		End:   pos.Offset + 1,
	}
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isIdentifierChar checks if the character can appear in an identifier.
// Identifiers exclude whitespace and the characters reserved for
// sigils, strings, and comments; everything else is allowed.
func isIdentifierChar(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\r', '*', '>', '-', '.', '"', '#', '/':
		return false
	}
	return true
}

// Keywords map for identifier lookup. Keyword matching is exact and
// case-sensitive; True or NOTHING stay ordinary identifiers.
var keywords = map[string]TokenType{
	"true":    TokenTrue,
	"false":   TokenFalse,
	"nothing": TokenNothing,
}

// lookupIdent determines if an identifier is a keyword or regular identifier
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// lineAt returns the text of the given 0-based line of input
func lineAt(input string, line int) string {
	lines := tobjstringx.SplitLines(input)
	if line < 0 || line >= len(lines) {
		return ""
	}
	return lines[line]
}

// IsBareIdentifier checks if a string lexes back as a single
// identifier token with identical text. The serializer uses this to
// decide whether a string value can be emitted without quotes.
func IsBareIdentifier(s string) bool {
	if tobjstringx.IsEmpty(s) {
		return false
	}

	tokens, err := TokenizeInput(s)
	if err != nil {
		return false
	}

	return len(tokens) == 2 && tokens[0].Type == TokenIdentifier && tokens[0].Value == s
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
