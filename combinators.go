package church

// The primitive combinators. Each is curried; applying one to fewer
// arguments than its arity yields a partial application.
var (
	// I is the identity combinator: I a = a.
	I = define("I", 1, func(args Vector) Value {
		return args[0]
	})

	// K is the constant combinator: K a b = a.
	K = define("K", 2, func(args Vector) Value {
		return args[0]
	})

	// KI returns its second argument: KI a b = b. It is equivalent to C K.
	KI = define("KI", 2, func(args Vector) Value {
		return args[1]
	})

	// M applies its argument to itself: M f = f f. f must accept itself as an
	// argument; if it does not, M panics or fails to terminate.
	M = define("M", 1, func(args Vector) Value {
		return Apply(args[0], args[0])
	})

	// C flips the arguments of a binary function: C f a b = f b a.
	C = define("C", 3, func(args Vector) Value {
		return Apply(args[0], args[2], args[1])
	})

	// B composes two unary functions: B f g x = f (g x).
	B = define("B", 3, func(args Vector) Value {
		return Apply(args[0], Apply(args[1], args[2]))
	})

	// B1 composes a unary function after a binary one: B1 f g a b = f (g a b).
	B1 = define("B1", 4, func(args Vector) Value {
		return Apply(args[0], Apply(args[1], args[2], args[3]))
	})

	// V holds two values for a selector: V a b f = f a b.
	V = define("V", 3, func(args Vector) Value {
		return Apply(args[2], args[0], args[1])
	})

	// Th applies its second argument to its first: Th n k = k n.
	Th = define("Th", 2, func(args Vector) Value {
		return Apply(args[1], args[0])
	})
)
