package church

import (
	"fmt"
	"io"
)

// Combinator is a value that can be applied to a single argument. Functions
// of several arguments are curried: each application returns a new
// Combinator until the last argument is supplied.
type Combinator interface {
	Value

	Apply(arg Value) Value
}

// Func adapts an ordinary Go function to a Combinator.
type Func func(arg Value) Value

func (f Func) write(w io.Writer) error {
	_, err := w.Write([]byte("<func>"))
	return err
}

func (f Func) Apply(arg Value) Value {
	return f(arg)
}

// Apply applies f to each of args in turn, so Apply(f, a, b) is f(a)(b).
// Applying a value that is not a Combinator panics.
func Apply(f Value, args ...Value) Value {
	for _, arg := range args {
		c, ok := f.(Combinator)
		if !ok {
			panic(fmt.Errorf("cannot apply %v to %v: not a combinator", EncodeToString(f), EncodeToString(arg)))
		}
		f = c.Apply(arg)
	}
	return f
}

// primitive is a named combinator of fixed arity whose body sees all of its
// arguments at once.
type primitive struct {
	name  Symbol
	arity int
	body  func(args Vector) Value
}

func define(name Symbol, arity int, body func(args Vector) Value) Combinator {
	if arity < 1 {
		panic(fmt.Errorf("%v: arity must be at least 1", name))
	}
	return &primitive{name: name, arity: arity, body: body}
}

func (p *primitive) write(w io.Writer) error {
	return p.name.write(w)
}

func (p *primitive) Apply(arg Value) Value {
	return p.collect(nil, arg)
}

func (p *primitive) collect(args Vector, arg Value) Value {
	args = args.with(arg)
	if len(args) == p.arity {
		return p.body(args)
	}
	return &partial{p: p, args: args}
}

// partial is a primitive that has received some, but not all, of its
// arguments.
type partial struct {
	p    *primitive
	args Vector
}

func (c *partial) write(w io.Writer) error {
	return writeList(w, c.p, c.args)
}

func (c *partial) Apply(arg Value) Value {
	return c.p.collect(c.args, arg)
}
