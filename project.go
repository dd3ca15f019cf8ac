package church

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrOverflow is returned when a numeral is too large for a native integer.
var ErrOverflow = errors.New("numeral overflows native integer")

// overflow is the panic value used to abandon a bounded count early.
type overflow struct {
	max uint64
}

// counter returns the native successor on Numbers. If max is non-nil, the
// successor panics with overflow instead of counting past it.
func counter(max *uint64) Func {
	return func(x Value) Value {
		n, ok := x.(Number)
		if !ok {
			panic(fmt.Errorf("cannot count %v: not a number", EncodeToString(x)))
		}
		if max != nil && n.i.IsUint64() && n.i.Uint64() >= *max {
			panic(overflow{max: *max})
		}
		return n.succ()
	}
}

func count(n Value, max *uint64) *big.Int {
	x := Apply(n, counter(max), NewInt(0))
	c, ok := x.(Number)
	if !ok {
		panic(fmt.Errorf("%v is not a numeral", EncodeToString(n)))
	}
	return c.Big()
}

// ToBig returns the number of times n applies its function.
func ToBig(n Value) *big.Int {
	return count(n, nil)
}

// ToInt returns the number of times n applies its function. If that number
// does not fit in an int64, ToInt stops counting and returns an error wrapping
// ErrOverflow.
func ToInt(n Value) (int64, error) {
	x, err := toUint(n, math.MaxInt64)
	return int64(x), err
}

func toUint(n Value, max uint64) (x uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, ok := r.(overflow)
			if !ok {
				panic(r)
			}
			x, err = 0, fmt.Errorf("%w: more than %d applications", ErrOverflow, o.max)
		}
	}()
	return count(n, &max).Uint64(), nil
}

// ToBool returns the native truth value of a Church boolean.
func ToBool(b Value) bool {
	x := Apply(b, Boolean(true), Boolean(false))
	v, ok := x.(Boolean)
	if !ok {
		panic(fmt.Errorf("%v is not a boolean", EncodeToString(b)))
	}
	return bool(v)
}
