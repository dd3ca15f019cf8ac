package church

// Church booleans select one of two arguments: T x y = x, F x y = y.
var (
	T = K
	F = KI
)

var (
	Not = define("Not", 1, func(args Vector) Value {
		return Apply(args[0], F, T)
	})

	And = define("And", 2, func(args Vector) Value {
		p, q := args[0], args[1]
		return Apply(p, q, p)
	})

	Or = define("Or", 2, func(args Vector) Value {
		p, q := args[0], args[1]
		return Apply(p, p, q)
	})

	Xor = define("Xor", 2, func(args Vector) Value {
		p, q := args[0], args[1]
		return Apply(p, Apply(Not, q), q)
	})

	// Beq is boolean equality.
	Beq = define("Beq", 2, func(args Vector) Value {
		p, q := args[0], args[1]
		return Apply(p, q, Apply(Not, q))
	})
)

// FromBool returns T or F.
func FromBool(b bool) Value {
	if b {
		return T
	}
	return F
}
