// Package fixed interpolates fixed-point values from
// golang.org/x/image/math/fixed.
//
// The fixed-point types satisfy lerp.Number, but lerp.Lerp multiplies
// their raw integer representations, which scales the result by the
// fractional unit. The functions here use fixed-point multiplication
// instead.
package fixed

import "golang.org/x/image/math/fixed"

// Lerp26_6 returns a + (b-a)*t.
func Lerp26_6(a, b, t fixed.Int26_6) fixed.Int26_6 {
	return a + (b - a).Mul(t)
}

// Lerp52_12 returns a + (b-a)*t.
func Lerp52_12(a, b, t fixed.Int52_12) fixed.Int52_12 {
	return a + (b - a).Mul(t)
}

// LerpPoint26_6 interpolates each coordinate of p towards q by t.
func LerpPoint26_6(p, q fixed.Point26_6, t fixed.Int26_6) fixed.Point26_6 {
	return p.Add(q.Sub(p).Mul(t))
}
