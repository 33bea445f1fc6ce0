// lexer.go — tokenizer for the DepenLang surface syntax.
//
// The surface language is the pure untyped lambda calculus:
//
//	\x. x y        abstraction ('\' or the λ glyph), application
//	(f x) y        explicit grouping
//
// The lexer is a single forward pass over the source bytes with one
// character of lookahead and no backtracking. Whitespace separates tokens
// and is never emitted. Identifiers are maximal runs of ASCII letters;
// there are no digits, underscores, literals, or comments in the surface
// syntax. Any other character is a *LexError carrying its 1-based line and
// 0-based column (errors.go renders columns as 1-based).
package depenlang

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LAMBDA // '\' or 'λ'
	DOT    // "."
	LROUND // "("
	RROUND // ")"

	// Identifiers
	ID
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "end of input"
	case LAMBDA:
		return "'\\'"
	case DOT:
		return "'.'"
	case LROUND:
		return "'('"
	case RROUND:
		return "')'"
	case ID:
		return "identifier"
	default:
		return fmt.Sprintf("token(%d)", int(tt))
	}
}

// Token is a lexical token with its raw text and source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int // 1-based
	Col    int // 0-based column of the first rune
}

// Lexer scans a DepenLang source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType) Token {
	tok := Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// ----- errors -----

// LexError reports an unrecognized character. Line is 1-based, Col is the
// 0-based column of the offending rune; Ch is the rune itself.
type LexError struct {
	Line int
	Col  int
	Ch   rune
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

func (l *Lexer) errChar(ch rune) error {
	return &LexError{
		Line: l.tokStartLine,
		Col:  l.tokStartCol,
		Ch:   ch,
		Msg:  fmt.Sprintf("unexpected character: %q", ch),
	}
}

// ----- scanners -----

// scanIdentifier extends the current token over [A-Za-z]*.
func (l *Lexer) scanIdentifier() {
	for {
		b, ok := l.peek()
		if !ok || !isAlpha(b) {
			return
		}
		l.advance()
	}
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF), nil
	}

	ch, _ := l.advance()

	switch ch {
	case '\\':
		return l.addToken(LAMBDA), nil
	case '.':
		return l.addToken(DOT), nil
	case '(':
		return l.addToken(LROUND), nil
	case ')':
		return l.addToken(RROUND), nil
	}

	if isAlpha(ch) {
		l.scanIdentifier()
		return l.addToken(ID), nil
	}

	// Non-ASCII: decode the full rune so 'λ' lexes as LAMBDA and error
	// messages show the actual character, not a stray byte. Only cur moves
	// by the byte count: col counts runes, so carets on the same line stay
	// under the character they point at.
	if ch >= utf8.RuneSelf {
		r, size := utf8.DecodeRuneInString(l.src[l.cur-1:])
		l.cur += size - 1
		if r == 'λ' {
			return l.addToken(LAMBDA), nil
		}
		return Token{}, l.errChar(r)
	}

	return Token{}, l.errChar(rune(ch))
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
