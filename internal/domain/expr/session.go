package expr

import (
	"sort"
	"strings"

	"eecalc/internal/domain/format"
	"eecalc/internal/domain/quantity"
)

// Session evaluates expression lines against a variable environment. It is
// the state behind the REPL and the script runner; the quantity core itself
// stays stateless.
type Session struct {
	vars map[string]quantity.Quantity
	opts format.Options
}

func NewSession() *Session {
	return &Session{
		vars: make(map[string]quantity.Quantity),
		opts: format.DefaultOptions(),
	}
}

// SetOptions replaces the rendering options used by EvalLine.
func (s *Session) SetOptions(o format.Options) {
	s.opts = o
}

// Set binds a variable.
func (s *Session) Set(name string, q quantity.Quantity) {
	s.vars[name] = q
}

// Get returns a bound variable.
func (s *Session) Get(name string) (quantity.Quantity, bool) {
	q, ok := s.vars[name]
	return q, ok
}

// Vars returns a copy of the variable environment.
func (s *Session) Vars() map[string]quantity.Quantity {
	out := make(map[string]quantity.Quantity, len(s.vars))
	for name, q := range s.vars {
		out[name] = q
	}
	return out
}

// Names returns the bound variable names in sorted order.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EvalLine parses and evaluates one line. Blank lines and comments produce
// no output (ok == false). Assignments bind the variable and echo
// "name = <rendered value>"; bare expressions echo the rendered value.
func (s *Session) EvalLine(input string) (output string, ok bool, err error) {
	if trimmed := strings.TrimSpace(input); trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false, nil
	}

	line, err := Parse(input)
	if err != nil {
		return "", false, err
	}

	q, err := s.Run(line)
	if err != nil {
		return "", false, err
	}

	rendered := format.PrettyOpts(q, s.opts)
	if line.Assign != "" {
		rendered = line.Assign + " = " + rendered
	}
	return rendered, true, nil
}

// Run evaluates a parsed line, binding the result when it is an assignment.
func (s *Session) Run(line *Line) (quantity.Quantity, error) {
	q, err := s.eval(line.expr)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if line.Assign != "" {
		s.vars[line.Assign] = q
	}
	return q, nil
}

func (s *Session) eval(n node) (quantity.Quantity, error) {
	switch n := n.(type) {
	case *literalNode:
		return n.q, nil

	case *varNode:
		q, ok := s.vars[n.name]
		if !ok {
			return quantity.Quantity{}, errAt(n.at, "unknown variable %q", n.name)
		}
		return q, nil

	case *negNode:
		q, err := s.eval(n.operand)
		if err != nil {
			return quantity.Quantity{}, err
		}
		minusOne, err := quantity.NewFactor(-1, 0)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return q.Mul(minusOne)

	case *squareNode:
		q, err := s.eval(n.operand)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return q.Squared()

	case *binaryNode:
		left, err := s.eval(n.left)
		if err != nil {
			return quantity.Quantity{}, err
		}
		right, err := s.eval(n.right)
		if err != nil {
			return quantity.Quantity{}, err
		}
		switch n.op {
		case quantity.OpAdd:
			return left.Add(right)
		case quantity.OpSub:
			return left.Sub(right)
		case quantity.OpMul:
			return left.Mul(right)
		case quantity.OpDiv:
			return left.Div(right)
		case quantity.OpParallel:
			return left.Parallel(right)
		case quantity.OpDivider:
			return left.Divider(right)
		}
	}
	panic("unreachable expression node")
}

// RunScript evaluates every line of a script and returns the rendered output
// lines. Evaluation stops at the first error.
func (s *Session) RunScript(script string) ([]string, error) {
	var out []string
	for _, raw := range strings.Split(script, "\n") {
		rendered, ok, err := s.EvalLine(raw)
		if err != nil {
			return out, err
		}
		if ok {
			out = append(out, rendered)
		}
	}
	return out, nil
}
