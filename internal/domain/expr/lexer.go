// Package expr implements the calculator's expression language: SI-prefixed
// quantity literals with unit and tolerance suffixes ("12mV 1%",
// "351 5.5% 200ppm"), variables, and the arithmetic operators routed through
// the quantity core, including the resistance-only "|" (parallel) and "//"
// (voltage divider) combinators and the "^2" postfix square.
package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type tokenType uint8

const (
	tokEOF tokenType = iota
	tokNumber        // magnitude with optional prefix/unit suffix: "12", "12k", "12mV"
	tokPercent       // tolerance annotation: "5%" (value stored as fraction)
	tokPpm           // temperature coefficient annotation: "200ppm"
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokParallel
	tokDivider
	tokSquare
	tokAssign
	tokLParen
	tokRParen
)

type token struct {
	typ    tokenType
	pos    int // byte offset in the line
	text   string
	value  float64 // tokNumber, tokPercent, tokPpm
	suffix string  // tokNumber: trailing prefix/unit letters
}

// ParseError is a syntax or literal error with its byte position in the line.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

func errAt(pos int, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// lex scans one input line into tokens. A "#" starts a comment running to
// the end of the line.
func lex(input string) ([]token, error) {
	var tokens []token
	i := 0

	for i < len(input) {
		c := input[i]

		switch {
		case c == ' ' || c == '\t':
			i++
			continue
		case c == '#':
			i = len(input)
			continue
		}

		start := i
		switch c {
		case '+':
			tokens = append(tokens, token{typ: tokPlus, pos: start, text: "+"})
			i++
		case '-':
			tokens = append(tokens, token{typ: tokMinus, pos: start, text: "-"})
			i++
		case '*':
			tokens = append(tokens, token{typ: tokStar, pos: start, text: "*"})
			i++
		case '|':
			tokens = append(tokens, token{typ: tokParallel, pos: start, text: "|"})
			i++
		case '(':
			tokens = append(tokens, token{typ: tokLParen, pos: start, text: "("})
			i++
		case ')':
			tokens = append(tokens, token{typ: tokRParen, pos: start, text: ")"})
			i++
		case '=':
			tokens = append(tokens, token{typ: tokAssign, pos: start, text: "="})
			i++
		case '/':
			if i+1 < len(input) && input[i+1] == '/' {
				tokens = append(tokens, token{typ: tokDivider, pos: start, text: "//"})
				i += 2
			} else {
				tokens = append(tokens, token{typ: tokSlash, pos: start, text: "/"})
				i++
			}
		case '^':
			if i+1 < len(input) && input[i+1] == '2' {
				tokens = append(tokens, token{typ: tokSquare, pos: start, text: "^2"})
				i += 2
			} else {
				return nil, errAt(start, "expected ^2")
			}
		default:
			switch {
			case c >= '0' && c <= '9' || c == '.':
				tok, n, err := lexNumber(input[i:], start)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, tok)
				i += n
			case isIdentStart(rune(c)):
				j := i
				for j < len(input) && isIdentPart(rune(input[j])) {
					j++
				}
				tokens = append(tokens, token{typ: tokIdent, pos: start, text: input[i:j]})
				i = j
			default:
				r, _ := utf8.DecodeRuneInString(input[i:])
				return nil, errAt(start, "unexpected character %q", r)
			}
		}
	}

	tokens = append(tokens, token{typ: tokEOF, pos: len(input)})
	return tokens, nil
}

// lexNumber scans a magnitude and classifies it by what trails it:
// "%" makes it a tolerance, a "ppm" letter run a temperature coefficient,
// any other letter run an SI prefix/unit suffix.
func lexNumber(s string, pos int) (token, int, error) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}

	// Exponent, e.g. "1.5e-3". A bare "e" followed by letters is left to
	// the suffix instead.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return token{}, 0, errAt(pos, "invalid number %q", s[:i])
	}

	if i < len(s) && s[i] == '%' {
		return token{typ: tokPercent, pos: pos, text: s[:i+1], value: value / 100}, i + 1, nil
	}

	// Trailing letters: SI prefix and/or unit, or the "ppm" marker.
	j := i
	for j < len(s) {
		r, n := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsLetter(r) {
			break
		}
		j += n
	}
	if suffix := s[i:j]; suffix == "ppm" {
		return token{typ: tokPpm, pos: pos, text: s[:j], value: value}, j, nil
	} else {
		return token{typ: tokNumber, pos: pos, text: s[:j], value: value, suffix: suffix}, j, nil
	}
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r >= '0' && r <= '9' || r == '_'
}
