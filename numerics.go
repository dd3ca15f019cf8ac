package church

// A Church numeral n applies a function n times: n f x = f (f (... (f x))).

// literal returns the numeral that applies its function count times.
func literal(name Symbol, count int) Combinator {
	return define(name, 2, func(args Vector) Value {
		f, x := args[0], args[1]
		for i := 0; i < count; i++ {
			x = Apply(f, x)
		}
		return x
	})
}

var (
	N0 = literal("N0", 0)
	N1 = literal("N1", 1)
	N2 = literal("N2", 2)
	N3 = literal("N3", 3)
)

// Numeral returns the Church numeral for k. Numerals above 3 are built from
// N3 with Succ.
func Numeral(k uint64) Value {
	switch k {
	case 0:
		return N0
	case 1:
		return N1
	case 2:
		return N2
	}
	var n Value = N3
	for ; k > 3; k-- {
		n = Apply(Succ, n)
	}
	return n
}

var (
	// Succ n f x = f (n f x)
	Succ = define("Succ", 3, func(args Vector) Value {
		n, f, x := args[0], args[1], args[2]
		return Apply(f, Apply(n, f, x))
	})

	// Pred steps the pair (0, 0) n times with Phi and takes the first
	// component. Pred N0 is N0.
	Pred = define("Pred", 1, func(args Vector) Value {
		return Apply(Fst, Apply(args[0], Phi, Apply(Pair, N0, N0)))
	})

	// Add n k = n Succ k
	Add = define("Add", 2, func(args Vector) Value {
		return Apply(args[0], Succ, args[1])
	})

	// Mul n k f = n (k f)
	Mul = define("Mul", 3, func(args Vector) Value {
		n, k, f := args[0], args[1], args[2]
		return Apply(n, Apply(k, f))
	})

	// Pow base exponent applies base exponent times.
	Pow = Th

	// Sub n k applies Pred to n k times. It saturates at zero.
	Sub = define("Sub", 2, func(args Vector) Value {
		n, k := args[0], args[1]
		return Apply(k, Pred, n)
	})

	IsZero = define("IsZero", 1, func(args Vector) Value {
		return Apply(args[0], Apply(K, F), T)
	})

	Leq = define("Leq", 2, func(args Vector) Value {
		n, k := args[0], args[1]
		return Apply(IsZero, Apply(Sub, n, k))
	})

	Eq = define("Eq", 2, func(args Vector) Value {
		n, k := args[0], args[1]
		return Apply(And, Apply(Leq, n, k), Apply(Leq, k, n))
	})

	Gt = define("Gt", 2, func(args Vector) Value {
		n, k := args[0], args[1]
		return Apply(Not, Apply(Leq, n, k))
	})

	// fibStep f a b = f b (Add a b)
	fibStep = define("fibStep", 3, func(args Vector) Value {
		f, a, b := args[0], args[1], args[2]
		return Apply(f, b, Apply(Add, a, b))
	})

	// Fib n = n fibStep K N0 N1. With n = 0 the selector K picks N0 directly.
	Fib = define("Fib", 1, func(args Vector) Value {
		return Apply(args[0], fibStep, K, N0, N1)
	})
)
