package church

import (
	"fmt"
	"math/big"
)

// Verdict is the outcome of comparing two values.
type Verdict int

const (
	// Inconclusive means the probes used could not settle the question.
	Inconclusive Verdict = iota
	Equal
	NotEqual
)

func (v Verdict) String() string {
	switch v {
	case Equal:
		return "equal"
	case NotEqual:
		return "not-equal"
	default:
		return "inconclusive"
	}
}

// A Domain says how two values are observed when they are compared.
type Domain interface {
	compare(x, y Value) Verdict
}

// Equivalent reports whether x and y denote the same member of d. A probe
// that panics makes the verdict Inconclusive.
//
// Both values must be pure: a combinator that inspects its arguments other
// than by applying them, or that never returns, is outside what the oracle can
// judge.
func Equivalent(d Domain, x, y Value) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			v = Inconclusive
		}
	}()
	if eqv(x, y) {
		return Equal
	}
	return d.compare(x, y)
}

// eqv returns true if x and y are the same object or equal native values.
func eqv(x, y Value) bool {
	if n, ok := x.(Number); ok {
		m, ok := y.(Number)
		return ok && n.i.Cmp(m.i) == 0
	}
	// Funcs are not comparable.
	if _, ok := x.(Func); ok {
		return false
	}
	if _, ok := y.(Func); ok {
		return false
	}
	return x == y
}

// opaque returns true for combinators whose behavior can only be observed by
// applying them.
func opaque(v Value) bool {
	switch v.(type) {
	case *Variable, *neutral:
		return false
	case Combinator:
		return true
	default:
		return false
	}
}

// meet combines the verdicts for the parts of a value.
func meet(vs ...Verdict) Verdict {
	result := Equal
	for _, v := range vs {
		switch v {
		case NotEqual:
			return NotEqual
		case Inconclusive:
			result = Inconclusive
		}
	}
	return result
}

// Data compares native values, probe variables and the terms built from them
// without applying anything. Two functions that are not the same object are
// Inconclusive.
var Data = Terms(0)

type booleanDomain struct{}

// Booleans compares Church booleans by applying both to a pair of markers.
var Booleans Domain = booleanDomain{}

func (booleanDomain) compare(x, y Value) Verdict {
	t, f := NewVariable("t"), NewVariable("f")
	decode := func(b Value) (bool, bool) {
		switch r := Apply(b, t, f); r {
		case t:
			return true, true
		case f:
			return false, true
		default:
			return false, false
		}
	}

	bx, ok := decode(x)
	if !ok {
		return Inconclusive
	}
	by, ok := decode(y)
	if !ok {
		return Inconclusive
	}
	if bx == by {
		return Equal
	}
	return NotEqual
}

type numeralDomain struct{}

// Numerals compares Church numerals by counting how many times each applies
// its function.
var Numerals Domain = numeralDomain{}

func (numeralDomain) compare(x, y Value) Verdict {
	cx, ok := applications(x)
	if !ok {
		return Inconclusive
	}
	cy, ok := applications(y)
	if !ok {
		return Inconclusive
	}
	if cx.Cmp(cy) == 0 {
		return Equal
	}
	return NotEqual
}

func applications(n Value) (*big.Int, bool) {
	c, ok := Apply(n, counter(nil), NewInt(0)).(Number)
	if !ok {
		return nil, false
	}
	return c.i, true
}

type pairDomain struct {
	fst, snd Domain
}

// PairOf compares Church pairs component by component.
func PairOf(fst, snd Domain) Domain {
	return pairDomain{fst: fst, snd: snd}
}

func (d pairDomain) compare(x, y Value) Verdict {
	return meet(
		Equivalent(d.fst, Apply(Fst, x), Apply(Fst, y)),
		Equivalent(d.snd, Apply(Snd, x), Apply(Snd, y)),
	)
}

type termDomain struct {
	depth int
}

// Terms compares arbitrary combinators symbolically. Opaque functions on
// both sides are applied to the same fresh variable, at most depth times along
// any path, and the resulting terms are compared structurally. Running out of
// depth is Inconclusive.
func Terms(depth int) Domain {
	return termDomain{depth: depth}
}

func (d termDomain) compare(x, y Value) Verdict {
	return compareTerms(x, y, d.depth)
}

func compareTerms(x, y Value, budget int) Verdict {
	if eqv(x, y) {
		return Equal
	}

	if opaque(x) || opaque(y) {
		_, xc := x.(Combinator)
		_, yc := y.(Combinator)
		if !xc || !yc {
			return NotEqual
		}
		if budget == 0 {
			return Inconclusive
		}
		v := NewVariable(fmt.Sprintf("v%d", budget))
		return compareTerms(Apply(x, v), Apply(y, v), budget-1)
	}

	nx, ok := x.(*neutral)
	if !ok {
		return NotEqual
	}
	ny, ok := y.(*neutral)
	if !ok || nx.head != ny.head || len(nx.args) != len(ny.args) {
		return NotEqual
	}
	verdicts := make([]Verdict, len(nx.args))
	for i := range nx.args {
		verdicts[i] = compareTerms(nx.args[i], ny.args[i], budget)
		if verdicts[i] == NotEqual {
			return NotEqual
		}
	}
	return meet(verdicts...)
}

// A Battery is an explicit list of argument rows to probe functions with.
type Battery struct {
	rows       []Vector
	exhaustive bool
}

// Exhaustive returns a battery whose rows cover every input the compared
// functions are meant to accept. Agreement on every row is Equal.
func Exhaustive(rows ...Vector) Battery {
	return Battery{rows: rows, exhaustive: true}
}

// Sample returns a battery of representative rows. Agreement on every row is
// Inconclusive; only a disagreement is decisive.
func Sample(rows ...Vector) Battery {
	return Battery{rows: rows}
}

// Rows returns the number of rows in the battery.
func (b Battery) Rows() int {
	return len(b.rows)
}

// BooleanInputs returns the exhaustive battery of every combination of T and F
// for a function of the given arity.
func BooleanInputs(arity int) Battery {
	rows := []Vector{{}}
	for i := 0; i < arity; i++ {
		next := make([]Vector, 0, 2*len(rows))
		for _, r := range rows {
			next = append(next, r.with(T), r.with(F))
		}
		rows = next
	}
	return Exhaustive(rows...)
}

// NumeralInputs returns a sample battery of every combination of the numerals
// 0..max for a function of the given arity.
func NumeralInputs(max uint64, arity int) Battery {
	rows := []Vector{{}}
	for i := 0; i < arity; i++ {
		next := make([]Vector, 0, int(max+1)*len(rows))
		for _, r := range rows {
			for k := uint64(0); k <= max; k++ {
				next = append(next, r.with(Numeral(k)))
			}
		}
		rows = next
	}
	return Sample(rows...)
}

type functionDomain struct {
	battery Battery
	result  Domain
}

// Functions compares functions by applying both to every row of b and
// comparing the results in the result domain.
func Functions(b Battery, result Domain) Domain {
	if len(b.rows) == 0 {
		panic("a battery must have at least one row")
	}
	return functionDomain{battery: b, result: result}
}

func (d functionDomain) compare(x, y Value) Verdict {
	verdict := Equal
	for _, row := range d.battery.rows {
		switch Equivalent(d.result, Apply(x, row...), Apply(y, row...)) {
		case NotEqual:
			return NotEqual
		case Inconclusive:
			verdict = Inconclusive
		}
	}
	if !d.battery.exhaustive {
		return Inconclusive
	}
	return verdict
}
