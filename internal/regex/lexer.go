package regex

import (
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tEOF     tokenType = iota
	tLiteral           // run of non-structural characters
	tLParen            // (
	tRParen            // )
	tStar              // *
	tUnion             // |
	tIllegal
)

func (t tokenType) String() string {
	switch t {
	case tEOF:
		return "EOF"
	case tLiteral:
		return "literal"
	case tLParen:
		return "'('"
	case tRParen:
		return "')'"
	case tStar:
		return "'*'"
	case tUnion:
		return "'|'"
	}
	return "illegal input"
}

type token struct {
	typ  tokenType
	text string
}

// describe renders the token for error messages.
func (t token) describe() string {
	if t.typ == tLiteral {
		return "'" + t.text + "'"
	}
	return t.typ.String()
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// patternLexer compiles the token DFA once; scanners created from it are
// independent of each other.
func patternLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`[(]`), tokAction(tLParen))
		l.Add([]byte(`[)]`), tokAction(tRParen))
		l.Add([]byte(`[*]`), tokAction(tStar))
		l.Add([]byte(`[|]`), tokAction(tUnion))
		l.Add([]byte(`[^()*|]+`), tokAction(tLiteral))
		lexerErr = l.Compile()
		lexer = l
	})
	return lexer, lexerErr
}

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, text: string(m.Bytes)}, nil
	}
}

// scanner is a one-token lookahead cursor over a pattern. Literal runs
// arrive as a single token; structural characters as one token each.
type scanner struct {
	s        *lexmachine.Scanner
	look     token
	peeked   bool
	consumed int // characters consumed so far
}

func newScanner(pattern string) (*scanner, error) {
	l, err := patternLexer()
	if err != nil {
		return nil, err
	}
	s, err := l.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	return &scanner{s: s}, nil
}

// peek returns the next token without consuming it. At the end of input it
// keeps returning tEOF.
func (sc *scanner) peek() token {
	if sc.peeked {
		return sc.look
	}
	sc.peeked = true
	tok, err, eof := sc.s.Next()
	switch {
	case eof:
		sc.look = token{typ: tEOF}
	case err != nil:
		sc.look = token{typ: tIllegal, text: err.Error()}
	default:
		sc.look = tok.(token)
	}
	return sc.look
}

// advance consumes the token returned by peek.
func (sc *scanner) advance() {
	tok := sc.peek()
	if tok.typ == tEOF || tok.typ == tIllegal {
		return
	}
	sc.consumed += utf8.RuneCountInString(tok.text)
	sc.peeked = false
}

func (sc *scanner) check(typ tokenType) bool { return sc.peek().typ == typ }

func (sc *scanner) offset() int { return sc.consumed }
