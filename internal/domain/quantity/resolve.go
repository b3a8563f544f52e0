package quantity

// Op is an arithmetic operator routed through the resolution table.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpSquare
	OpParallel
	OpDivider
)

var opSymbols = [...]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpSquare:   "^2",
	OpParallel: "|",
	OpDivider:  "//",
}

func (o Op) String() string {
	if int(o) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[o]
}

type opKey struct {
	op          Op
	left, right Kind
}

// resolution is the static (operator, left kind, right kind) → result kind
// table. Built once at init, read-only afterwards, safe for concurrent use.
var resolution map[opKey]Kind

// rule declares one legal combination. Commutative multiplications are listed
// once and mirrored when the table is built; order matters for division.
type rule struct {
	op          Op
	left, right Kind
	result      Kind
}

var rules = []rule{
	// Products of distinct quantities (mirrored: A*B implies B*A).
	{OpMul, Voltage, Current, Power},
	{OpMul, Current, Resistance, Voltage},
	{OpMul, Power, Duration, Energy},
	{OpMul, CurrentSquared, Resistance, Power},

	// Same-kind products that square.
	{OpMul, Voltage, Voltage, VoltageSquared},
	{OpMul, Current, Current, CurrentSquared},

	// Quotients (not mirrored).
	{OpDiv, Voltage, Resistance, Current},
	{OpDiv, Voltage, Current, Resistance},
	{OpDiv, Power, Voltage, Current},
	{OpDiv, Power, Current, Voltage},
	{OpDiv, Energy, Duration, Power},
	{OpDiv, Energy, Power, Duration},
	{OpDiv, VoltageSquared, Resistance, Power},
	{OpDiv, VoltageSquared, Power, Resistance},
	{OpDiv, VoltageSquared, Voltage, Voltage},
	{OpDiv, CurrentSquared, Current, Current},

	// Squaring is defined for voltage and current only.
	{OpSquare, Voltage, Voltage, VoltageSquared},
	{OpSquare, Current, Current, CurrentSquared},

	// Resistance-only fused combinators.
	{OpParallel, Resistance, Resistance, Resistance},
	{OpDivider, Resistance, Resistance, Dimensionless},
}

func init() {
	resolution = make(map[opKey]Kind, 4*len(rules)+8*int(kindCount))

	for _, r := range rules {
		resolution[opKey{r.op, r.left, r.right}] = r.result
		if r.op == OpMul {
			resolution[opKey{OpMul, r.right, r.left}] = r.result
		}
	}

	for k := Kind(0); k < kindCount; k++ {
		// Same-kind division is always a dimensionless ratio.
		resolution[opKey{OpDiv, k, k}] = Dimensionless

		// Factors scale any quantity without changing its kind.
		resolution[opKey{OpMul, k, Dimensionless}] = k
		resolution[opKey{OpMul, Dimensionless, k}] = k
		resolution[opKey{OpDiv, k, Dimensionless}] = k

		// Addition and subtraction stay within one kind. Factors support
		// neither, and subtracting resistances is not meaningful.
		if k == Dimensionless {
			continue
		}
		resolution[opKey{OpAdd, k, k}] = k
		if k != Resistance {
			resolution[opKey{OpSub, k, k}] = k
		}
	}
}

// Resolve returns the result kind for an operator applied to two kinds, or an
// UnsupportedCombinationError if the triple is not in the table.
func Resolve(op Op, left, right Kind) (Kind, error) {
	if result, ok := resolution[opKey{op, left, right}]; ok {
		return result, nil
	}
	return 0, &UnsupportedCombinationError{Op: op, Left: left, Right: right}
}
