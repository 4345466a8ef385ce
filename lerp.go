// Package lerp provides generic linear interpolation and element-wise
// arithmetic over sequences of numbers.
package lerp

import "golang.org/x/exp/constraints"

// Number is a constraint for the types that lerp types and functions
// can handle.
type Number interface {
	constraints.Integer | constraints.Float
}

// Lerp interpolates between n[0] and n[1] by n[2]. In other words, it
// returns
//
//	n[0] + (n[1]-n[0])*n[2]
//
// n[2] is not restricted to [0, 1], so values outside of that range
// extrapolate.
func Lerp[T Number](n [3]T) T {
	return n[0] + (n[1]-n[0])*n[2]
}
