package lerp

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by Vec operations when the operands
// have different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Vec is an ordered sequence of numbers that supports element-wise
// arithmetic. Operations never modify their operands.
type Vec[T Number] []T

// FromSingle returns a Vec containing n copies of v. It panics if n is
// negative.
func FromSingle[T Number](v T, n int) Vec[T] {
	r := make(Vec[T], n)
	for i := range r {
		r[i] = v
	}
	return r
}

// Must panics if err is non-nil and returns v otherwise.
func Must[T Number](v Vec[T], err error) Vec[T] {
	if err != nil {
		panic(err)
	}
	return v
}

func (v Vec[T]) Len() int {
	return len(v)
}

func checkLen(op string, lens ...int) error {
	for _, n := range lens[1:] {
		if n != lens[0] {
			return fmt.Errorf("%v: lengths %v: %w", op, lens, ErrLengthMismatch)
		}
	}
	return nil
}

func (v Vec[T]) apply(op string, other Vec[T], f func(a, b T) T) (Vec[T], error) {
	err := checkLen(op, len(v), len(other))
	if err != nil {
		return nil, err
	}

	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = f(v[i], other[i])
	}
	return r, nil
}

// Sum returns v[i] + other[i] for every i.
func (v Vec[T]) Sum(other Vec[T]) (Vec[T], error) {
	return v.apply("sum", other, func(a, b T) T { return a + b })
}

// Sub returns v[i] - other[i] for every i.
func (v Vec[T]) Sub(other Vec[T]) (Vec[T], error) {
	return v.apply("sub", other, func(a, b T) T { return a - b })
}

// Mul returns v[i] * other[i] for every i.
func (v Vec[T]) Mul(other Vec[T]) (Vec[T], error) {
	return v.apply("mul", other, func(a, b T) T { return a * b })
}

// Div returns v[i] / other[i] for every i. Integer division by zero
// panics as it normally would.
func (v Vec[T]) Div(other Vec[T]) (Vec[T], error) {
	return v.apply("div", other, func(a, b T) T { return a / b })
}

// Lerp interpolates each element of v towards the corresponding
// element of end by the corresponding element of t.
func (v Vec[T]) Lerp(end, t Vec[T]) (Vec[T], error) {
	err := checkLen("lerp", len(v), len(end), len(t))
	if err != nil {
		return nil, err
	}

	r := make(Vec[T], len(v))
	for i := range v {
		r[i] = Lerp([3]T{v[i], end[i], t[i]})
	}
	return r, nil
}

// LerpScalar is like Lerp but uses the same t for every element.
func (v Vec[T]) LerpScalar(end Vec[T], t T) (Vec[T], error) {
	return v.apply("lerp", end, func(a, b T) T { return Lerp([3]T{a, b, t}) })
}
