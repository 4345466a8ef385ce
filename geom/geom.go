// Package geom interpolates the points and rectangles of
// deedles.dev/ximage/geom.
package geom

import (
	"fmt"

	"deedles.dev/lerp"
	"deedles.dev/ximage/geom"
)

// LerpPoint interpolates each coordinate of p towards q by t.
func LerpPoint[T geom.Scalar](p, q geom.Point[T], t T) geom.Point[T] {
	return geom.Pt(
		lerp.Lerp([3]T{p.X, q.X, t}),
		lerp.Lerp([3]T{p.Y, q.Y, t}),
	)
}

// LerpRect interpolates both corners of r towards the corresponding
// corners of s by t. The result is well-formed even if extrapolating
// flips the corners.
func LerpRect[T geom.Scalar](r, s geom.Rect[T], t T) geom.Rect[T] {
	lo := LerpPoint(r.Min, s.Min, t)
	hi := LerpPoint(r.Max, s.Max, t)
	return geom.Rt(lo.X, lo.Y, hi.X, hi.Y)
}

func PointVec[T geom.Scalar](p geom.Point[T]) lerp.Vec[T] {
	return lerp.Vec[T]{p.X, p.Y}
}

// PointFromVec converts a two-element Vec into a Point.
func PointFromVec[T geom.Scalar](v lerp.Vec[T]) (geom.Point[T], error) {
	if len(v) != 2 {
		return geom.Point[T]{}, fmt.Errorf("point from %v elements: %w", len(v), lerp.ErrLengthMismatch)
	}
	return geom.Pt(v[0], v[1]), nil
}
