package church

import (
	"io"
	"math/big"
	"strings"
)

// Value is anything a combinator may be applied to or may return: other
// combinators, probe variables, and the native values used at the boundary.
type Value interface {
	write(w io.Writer) error
}

// Encode writes a textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	if v == nil {
		_, err := w.Write([]byte("()"))
		return err
	}
	return v.write(w)
}

// EncodeToString returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// Number
type Number struct {
	i *big.Int
}

func NewInt(x int64) Number {
	var i big.Int
	i.SetInt64(x)
	return Number{&i}
}

func (n Number) write(w io.Writer) error {
	_, err := w.Write([]byte(n.i.String()))
	return err
}

// Int returns n as an int64 and reports whether the conversion was exact.
func (n Number) Int() (int64, bool) {
	return n.i.Int64(), n.i.IsInt64()
}

// Big returns a copy of n.
func (n Number) Big() *big.Int {
	return new(big.Int).Set(n.i)
}

func (n Number) succ() Number {
	var i big.Int
	i.Add(n.i, big.NewInt(1))
	return Number{&i}
}

// Boolean
type Boolean bool

func (b Boolean) write(w io.Writer) error {
	text := "#t"
	if !b {
		text = "#f"
	}
	_, err := w.Write([]byte(text))
	return err
}

// Symbol
type Symbol string

func (s Symbol) write(w io.Writer) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeList writes head followed by args as a parenthesized list.
func writeList(w io.Writer, head Value, args Vector) error {
	if _, err := w.Write([]byte("(")); err != nil {
		return err
	}
	if err := Encode(w, head); err != nil {
		return err
	}
	for _, a := range args {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := Encode(w, a); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}
