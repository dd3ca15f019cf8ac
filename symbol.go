package church

import "io"

// Variable is a probe standing for an unknown argument. Two variables are the
// same only if they are the same object. Applying a variable does not compute
// anything: it records the application as a neutral term, so the shape of a
// result shows exactly how a combinator used its arguments.
type Variable struct {
	name Symbol
}

// NewVariable returns a fresh variable. The name is only used for display.
func NewVariable(name string) *Variable {
	return &Variable{name: Symbol(name)}
}

func (v *Variable) write(w io.Writer) error {
	return v.name.write(w)
}

func (v *Variable) Apply(arg Value) Value {
	return &neutral{head: v, args: Vector{arg}}
}

// neutral is a variable applied to one or more arguments.
type neutral struct {
	head *Variable
	args Vector
}

func (n *neutral) write(w io.Writer) error {
	return writeList(w, n.head, n.args)
}

func (n *neutral) Apply(arg Value) Value {
	return &neutral{head: n.head, args: n.args.with(arg)}
}
