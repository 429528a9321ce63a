package regex

// DefaultMaxDepth bounds group nesting when Parser.MaxDepth is zero.
const DefaultMaxDepth = 512

// Parser turns a pattern into a syntax tree.
//
//	Alternative := Unary ( '|' Unary )*
//	Unary       := Concat ( '*'+ Concat )*
//	Concat      := Factor+
//	Factor      := '(' Alternative ')' | LiteralRun
//
// A star applies to the last factor of the concatenation parsed so far.
type Parser struct {
	MaxDepth int
}

// Parse parses pattern with the default depth bound.
func Parse(pattern string) (Node, error) {
	return (&Parser{}).Parse(pattern)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(pattern string) Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

// Parse parses pattern. It fails on the first malformed construct and never
// returns a partial tree.
func (p *Parser) Parse(pattern string) (Node, error) {
	sc, err := newScanner(pattern)
	if err != nil {
		return nil, err
	}
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	ps := &parser{sc: sc, maxDepth: maxDepth}
	n, err := ps.parseAlternative()
	if err != nil {
		return nil, err
	}
	if !sc.check(tEOF) {
		return nil, ps.unexpected(tEOF.String())
	}
	return n, nil
}

type parser struct {
	sc       *scanner
	depth    int
	maxDepth int
}

func (p *parser) parseAlternative() (Node, error) {
	var branches []Node
	for {
		n, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		branches = append(branches, n)
		if !p.sc.check(tUnion) {
			break
		}
		p.sc.advance()
	}
	return NewAlternation(branches...), nil
}

// parseUnary reads a maximal run of factors, then for every '*' that follows
// replaces the last factor read with its repetition and keeps reading.
func (p *parser) parseUnary() (Node, error) {
	factors, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if len(factors) == 0 {
		return nil, &EmptyOperandError{Found: p.sc.peek().describe(), Offset: p.sc.offset()}
	}
	for p.sc.check(tStar) {
		for p.sc.check(tStar) {
			p.sc.advance()
		}
		last := len(factors) - 1
		factors[last] = NewRepetition(factors[last])

		more, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		factors = append(factors, more...)
	}
	return NewConcatenation(factors...), nil
}

func (p *parser) parseConcat() ([]Node, error) {
	var factors []Node
	for {
		tok := p.sc.peek()
		switch tok.typ {
		case tLiteral:
			p.sc.advance()
			factors = append(factors, NewLiteral(tok.text))
		case tLParen:
			p.sc.advance()
			n, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			factors = append(factors, n)
		default:
			return factors, nil
		}
	}
}

func (p *parser) parseGroup() (Node, error) {
	p.depth++
	if p.depth > p.maxDepth {
		return nil, &DepthExceededError{Limit: p.maxDepth, Offset: p.sc.offset()}
	}
	n, err := p.parseAlternative()
	if err != nil {
		return nil, err
	}
	if err := p.consume(tRParen); err != nil {
		return nil, err
	}
	p.depth--
	return Group(n), nil
}

func (p *parser) consume(typ tokenType) error {
	if !p.sc.check(typ) {
		return p.unexpected(typ.String())
	}
	p.sc.advance()
	return nil
}

func (p *parser) unexpected(expected string) error {
	return &UnexpectedTokenError{
		Expected: expected,
		Found:    p.sc.peek().describe(),
		Offset:   p.sc.offset(),
	}
}
