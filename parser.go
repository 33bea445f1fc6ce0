// parser.go — recursive-descent parser producing Terms.
//
// OVERVIEW
// --------
// The parser consumes the token stream from lexer.go and builds the Term
// tree defined in ast.go. The grammar is deliberately small:
//
//	term        := application
//	application := atom atom*                 // folds left into nested App
//	atom        := ID
//	             | LAMBDA ID DOT term         // body extends maximally right
//	             | LROUND term RROUND
//
// Application is left-associative ("f x y" is App(App(f,x),y)) and an
// abstraction body swallows the whole remaining term ("\x. x y" is
// Abs(x, App(x,y))); parentheses are the only way to cut a body short.
//
// Parsing is all-or-nothing: the first error aborts and no partial tree is
// ever returned, and a successful parse must consume the entire input —
// leftover tokens are a DiagTrailingInput error.
//
// The "interactive" entry point surfaces errors at end of input as
// *ParseError{Kind: DiagIncomplete} so a REPL can keep reading continuation
// lines instead of rejecting an unfinished term (see cmd/depen).
package depenlang

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                                  PUBLIC API
////////////////////////////////////////////////////////////////////////////////

// Diag enumerates the parse failure kinds.
type Diag int

const (
	DiagUnexpectedToken   Diag = iota // a construct expected one token class and found another
	DiagUnexpectedEOF                 // tokens ran out mid-construct
	DiagTrailingInput                 // a complete term was parsed but input remains
	DiagInvalidExpression             // no production can start at this token
	DiagIncomplete                    // interactive mode only: more input may complete the term
)

// ParseError is a structured syntactic error. Line is 1-based and Col is
// 0-based (errors.go renders it 1-based); Tok is the offending token.
type ParseError struct {
	Kind Diag
	Tok  Token
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// IsIncomplete reports whether err is an interactive-mode incomplete-input
// parse error.
func IsIncomplete(err error) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == DiagIncomplete
}

// Parse lexes and parses a complete source string into a Term. The whole
// input must be a single term; errors are *LexError or *ParseError.
func Parse(src string) (Term, error) {
	return parse(src, false)
}

// ParseInteractive parses like Parse but reports errors at end of input
// with Kind DiagIncomplete, suitable for multi-line REPL reading.
func ParseInteractive(src string) (Term, error) {
	return parse(src, true)
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
//                              PRIVATE IMPLEMENTATION
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	toks        []Token
	i           int
	interactive bool
}

func parse(src string, interactive bool) (Term, error) {
	lex := NewLexer(src)
	toks, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, interactive: interactive}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if g := p.peek(); g.Type != EOF {
		return nil, p.errAt(DiagTrailingInput, g,
			fmt.Sprintf("unexpected %s after a complete term", describe(g)))
	}
	return t, nil
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) advance() Token {
	t := p.peek()
	if t.Type != EOF {
		p.i++
	}
	return t
}

func (p *parser) need(tt TokenType, msg string) (Token, error) {
	g := p.peek()
	if g.Type == tt {
		p.i++
		return g, nil
	}
	if g.Type == EOF {
		return Token{}, p.errAt(DiagUnexpectedEOF, g, msg)
	}
	return Token{}, p.errAt(DiagUnexpectedToken, g, fmt.Sprintf("%s, got %s", msg, describe(g)))
}

func (p *parser) errAt(kind Diag, tok Token, msg string) *ParseError {
	if p.interactive && (kind == DiagUnexpectedEOF || (kind == DiagUnexpectedToken && tok.Type == EOF)) {
		kind = DiagIncomplete
	}
	return &ParseError{Kind: kind, Tok: tok, Line: tok.Line, Col: tok.Col, Msg: msg}
}

func describe(t Token) string {
	if t.Type == ID {
		return fmt.Sprintf("identifier %q", t.Lexeme)
	}
	return t.Type.String()
}

// ───────────────────────────────── grammar ──────────────────────────────────

func (p *parser) term() (Term, error) {
	return p.application()
}

// application folds a run of atoms left-associatively. It stops at ')' so a
// parenthesized term can close, and at end of input.
func (p *parser) application() (Term, error) {
	expr, err := p.atom()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek().Type != RROUND {
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		expr = App{Fun: expr, Arg: right}
	}
	return expr, nil
}

func (p *parser) atom() (Term, error) {
	switch tok := p.advance(); tok.Type {
	case ID:
		return Var{Name: tok.Lexeme}, nil
	case LAMBDA:
		return p.abstraction()
	case LROUND:
		expr, err := p.term()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')' to close grouping"); err != nil {
			return nil, err
		}
		return expr, nil
	case EOF:
		return nil, p.errAt(DiagUnexpectedEOF, tok, "unexpected end of input, expected a term")
	default:
		return nil, p.errAt(DiagInvalidExpression, tok,
			fmt.Sprintf("a term cannot start with %s", describe(tok)))
	}
}

// abstraction parses the remainder of "\x. body". The leading LAMBDA has
// already been consumed; the body is a full term, so it extends to the end
// of the input or the nearest unmatched ')'.
func (p *parser) abstraction() (Term, error) {
	param, err := p.need(ID, "expected parameter name after '\\'")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(DOT, "expected '.' after abstraction parameter"); err != nil {
		return nil, err
	}
	body, err := p.term()
	if err != nil {
		return nil, err
	}
	return Abs{Param: param.Lexeme, Body: body}, nil
}
