package church

// Vector is an ordered list of arguments.
type Vector []Value

// with returns a copy of v with x appended. v itself is never modified, so
// partial applications that share a prefix stay independent.
func (v Vector) with(x Value) Vector {
	out := make(Vector, len(v)+1)
	copy(out, v)
	out[len(v)] = x
	return out
}
