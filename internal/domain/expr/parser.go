package expr

import (
	"eecalc/internal/domain/quantity"
)

// Grammar:
//
//	line    := [ident "="] sum
//	sum     := product (("+"|"-") product)*
//	product := atom (("*"|"/"|"|"|"//") atom | "^2")*
//	atom    := literal | ident | "-" atom | "(" sum ")"
//	literal := number[prefix][unit] [number"%"] [number"ppm"]
//
// A literal without a unit letter is a resistance, so plain "12k" reads as
// 12 kΩ, matching the original calculator notation. "ppm" is only valid on
// resistances.
type node interface {
	pos() int
}

type literalNode struct {
	q  quantity.Quantity
	at int
}

type varNode struct {
	name string
	at   int
}

type negNode struct {
	operand node
	at      int
}

type squareNode struct {
	operand node
	at      int
}

type binaryNode struct {
	op          quantity.Op
	left, right node
	at          int
}

func (n *literalNode) pos() int { return n.at }
func (n *varNode) pos() int     { return n.at }
func (n *negNode) pos() int     { return n.at }
func (n *squareNode) pos() int  { return n.at }
func (n *binaryNode) pos() int  { return n.at }

// Line is one parsed statement: an expression, optionally assigned to a
// variable. Assign is empty for bare expressions.
type Line struct {
	Assign string
	expr   node
}

// Parse parses a single line of the expression language.
func Parse(input string) (*Line, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	line := &Line{}

	if p.peek().typ == tokIdent && p.peekAt(1).typ == tokAssign {
		line.Assign = p.next().text
		p.next() // "="
	}

	line.expr, err = p.parseSum()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.typ != tokEOF {
		return nil, errAt(tok.pos, "unexpected %q", tok.text)
	}
	return line, nil
}

type parser struct {
	tokens []token
	cursor int
}

func (p *parser) peek() token {
	return p.tokens[p.cursor]
}

func (p *parser) peekAt(n int) token {
	if p.cursor+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.cursor+n]
}

func (p *parser) next() token {
	tok := p.tokens[p.cursor]
	if tok.typ != tokEOF {
		p.cursor++
	}
	return tok
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		var op quantity.Op
		switch tok.typ {
		case tokPlus:
			op = quantity.OpAdd
		case tokMinus:
			op = quantity.OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, left: left, right: right, at: tok.pos}
	}
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		var op quantity.Op
		switch tok.typ {
		case tokStar:
			op = quantity.OpMul
		case tokSlash:
			op = quantity.OpDiv
		case tokParallel:
			op = quantity.OpParallel
		case tokDivider:
			op = quantity.OpDivider
		case tokSquare:
			p.next()
			left = &squareNode{operand: left, at: tok.pos}
			continue
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, left: left, right: right, at: tok.pos}
	}
}

func (p *parser) parseAtom() (node, error) {
	tok := p.peek()
	switch tok.typ {
	case tokMinus:
		p.next()
		operand, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &negNode{operand: operand, at: tok.pos}, nil

	case tokLParen:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.typ != tokRParen {
			return nil, errAt(closing.pos, "expected )")
		}
		return inner, nil

	case tokIdent:
		p.next()
		return &varNode{name: tok.text, at: tok.pos}, nil

	case tokNumber:
		return p.parseLiteral()

	case tokEOF:
		return nil, errAt(tok.pos, "unexpected end of expression")
	}
	return nil, errAt(tok.pos, "unexpected %q", tok.text)
}

// parseLiteral assembles a quantity literal from a magnitude token and its
// optional tolerance and temperature-coefficient annotations.
func (p *parser) parseLiteral() (node, error) {
	tok := p.next()

	scale, kind, err := decodeSuffix(tok.suffix, tok.pos)
	if err != nil {
		return nil, err
	}

	tolerance := 0.0
	if p.peek().typ == tokPercent {
		tolerance = p.next().value
	}

	var q quantity.Quantity
	if p.peek().typ == tokPpm {
		ppm := p.next()
		if kind != quantity.Resistance {
			return nil, errAt(ppm.pos, "ppm only applies to resistances")
		}
		q, err = quantity.NewResistanceAlpha(tok.value*scale, tolerance, ppm.value)
	} else {
		q, err = quantity.New(kind, tok.value*scale, tolerance)
	}
	if err != nil {
		return nil, errAt(tok.pos, "%v", err)
	}
	return &literalNode{q: q, at: tok.pos}, nil
}

var prefixScales = map[rune]float64{
	'p': 1e-12,
	'n': 1e-9,
	'µ': 1e-6,
	'u': 1e-6, // ASCII alias for micro
	'm': 1e-3,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
}

var unitKinds = map[rune]quantity.Kind{
	'V': quantity.Voltage,
	'A': quantity.Current,
	'W': quantity.Power,
	'J': quantity.Energy,
	's': quantity.Duration,
	'f': quantity.Dimensionless,
	'Ω': quantity.Resistance,
}

// decodeSuffix resolves a literal's trailing letters into a scale factor and
// quantity kind. No suffix, or a prefix alone, means a resistance.
func decodeSuffix(suffix string, pos int) (float64, quantity.Kind, error) {
	runes := []rune(suffix)
	switch len(runes) {
	case 0:
		return 1, quantity.Resistance, nil
	case 1:
		if kind, ok := unitKinds[runes[0]]; ok {
			return 1, kind, nil
		}
		if scale, ok := prefixScales[runes[0]]; ok {
			return scale, quantity.Resistance, nil
		}
	case 2:
		scale, okScale := prefixScales[runes[0]]
		kind, okKind := unitKinds[runes[1]]
		if okScale && okKind {
			return scale, kind, nil
		}
	}
	return 0, 0, errAt(pos, "unknown unit suffix %q", suffix)
}
