package church

// Church pairs hold two values and hand them to a selector: Pair a b f = f a b.
var Pair = V

var (
	// Fst p = p K
	Fst = define("Fst", 1, func(args Vector) Value {
		return Apply(args[0], K)
	})

	// Snd p = p KI
	Snd = define("Snd", 1, func(args Vector) Value {
		return Apply(args[0], KI)
	})

	// SetFst x p returns a new pair with x in place of the first component.
	SetFst = define("SetFst", 2, func(args Vector) Value {
		x, p := args[0], args[1]
		return Apply(Pair, x, Apply(Snd, p))
	})

	// SetSnd x p returns a new pair with x in place of the second component.
	SetSnd = define("SetSnd", 2, func(args Vector) Value {
		x, p := args[0], args[1]
		return Apply(Pair, Apply(Fst, p), x)
	})

	// Phi maps (a, b) to (b, b+1).
	Phi = define("Phi", 1, func(args Vector) Value {
		b := Apply(Snd, args[0])
		return Apply(Pair, b, Apply(Succ, b))
	})
)
