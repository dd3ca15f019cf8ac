package church

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "not-equal", NotEqual.String())
	assert.Equal(t, "inconclusive", Inconclusive.String())
}

func TestEquivalent(t *testing.T) {
	gt2 := Apply(B1, Not, Leq)

	cases := []struct {
		name     string
		domain   Domain
		x, y     Value
		expected Verdict
	}{
		// Booleans
		{"not-t", Booleans, Apply(Not, T), F, Equal},
		{"not-f", Booleans, Apply(Not, F), T, Equal},
		{"t-f", Booleans, T, F, NotEqual},
		{"n0-is-f", Booleans, N0, F, Equal},
		{"not-a-boolean", Booleans, I, T, Inconclusive},
		{"is-zero", Booleans, Apply(IsZero, Apply(Pred, N1)), T, Equal},

		// Numerals
		{"add", Numerals, Apply(Add, N1, N1), N2, Equal},
		{"mul-is-b", Numerals, Apply(Mul, N2, N3), Apply(B, N2, N3), Equal},
		{"pow-is-th", Numerals, Apply(Pow, N2, N3), Apply(Th, N2, N3), Equal},
		{"n2-n3", Numerals, N2, N3, NotEqual},
		{"f-is-n0", Numerals, F, N0, Equal},
		{"not-a-numeral", Numerals, T, N1, Inconclusive},
		{"sub-saturates", Numerals, Apply(Sub, N1, N3), N0, Equal},

		// Terms
		{"terms-numerals", Terms(4), Apply(Add, N2, N2), Apply(Mul, N2, N2), Equal},
		{"terms-numerals-differ", Terms(4), Apply(Add, N2, N1), Apply(Mul, N2, N2), NotEqual},
		{"terms-booleans", Terms(4), Apply(Beq, F, F), T, Equal},
		{"terms-pairs", Terms(4), Apply(Pair, N0, N1), Apply(Phi, Apply(Pair, N3, N0)), Equal},
		{"terms-eta", Terms(4), I, Apply(C, Apply(C, I)), Equal},
		{"terms-pred", Terms(4), Apply(Pred, N3), N2, Equal},
		{"terms-fib", Terms(4), Apply(Fib, Numeral(6)), Apply(Mul, N2, Apply(Succ, N3)), Equal},
		{"terms-depth", Terms(1), K, Apply(C, KI), Inconclusive},
		{"terms-data", Terms(4), I, NewInt(1), NotEqual},
		{"terms-self-application", Terms(4), M, Apply(B, M, I), Equal},

		// Functions
		{"gt-sampled", Functions(NumeralInputs(4, 2), Booleans), Gt, gt2, Inconclusive},
		{"gt-leq-sampled", Functions(NumeralInputs(4, 2), Booleans), Gt, Leq, NotEqual},
		{"succ-sampled", Functions(NumeralInputs(6, 1), Numerals), Succ, Apply(Add, N1), Inconclusive},
		{"pred-sampled", Functions(NumeralInputs(6, 1), Numerals), Pred, I, NotEqual},
		{"and-exhaustive", Functions(BooleanInputs(2), Booleans), And, Apply(C, And), Equal},
		{"same-object", Functions(Sample(Vector{N1}), Numerals), Succ, Succ, Equal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Equivalent(c.domain, c.x, c.y))
		})
	}
}

func TestGtAgreesWithComposedLeq(t *testing.T) {
	gt2 := Apply(B1, Not, Leq)
	for _, row := range NumeralInputs(6, 2).rows {
		assert.Equal(t, Equal, Equivalent(Booleans, Apply(Gt, row...), Apply(gt2, row...)))
	}
}

func TestBatteries(t *testing.T) {
	assert.Equal(t, 1, BooleanInputs(0).Rows())
	assert.Equal(t, 4, BooleanInputs(2).Rows())
	assert.Equal(t, 8, BooleanInputs(3).Rows())
	assert.True(t, BooleanInputs(2).exhaustive)

	b := NumeralInputs(3, 2)
	assert.Equal(t, 16, b.Rows())
	assert.False(t, b.exhaustive)

	assert.Panics(t, func() {
		Functions(Sample(), Booleans)
	})
}

func TestEquivalentRecovers(t *testing.T) {
	explode := Func(func(Value) Value {
		panic("boom")
	})
	assert.Equal(t, Inconclusive, Equivalent(Numerals, explode, N1))
	assert.Equal(t, Inconclusive, Equivalent(Booleans, NewInt(1), T))
}

func TestFuncsAreNeverIdentical(t *testing.T) {
	id := Func(func(v Value) Value { return v })
	assert.False(t, eqv(id, id))
	assert.Equal(t, Equal, Equivalent(Terms(2), id, I))
}
