// Package geom provides the small amount of 2D geometry that puzzle solvers
// tend to need: axis-aligned bounds, line segments and where they cross
// circles.
//
// All types are plain values. They are immutable once built and safe for
// concurrent use.
//
// # Tolerances
//
// Coordinates are float64 and are assumed to be finite. Comparisons that must
// be well defined at equality, such as ordering the corners of a [Bounds] or
// comparing two [Intersections], use a total order over floats (see [MinMax])
// instead of the built-in operators.
//
// Tests for whether a point lies on a segment, and the classification of
// line/circle roots, use the empirically tuned [Epsilon]. See its
// documentation for how the two uses differ.
//
// # Errors
//
// Building a [Bounds] with inverted edges and indexing past the end of an
// [Intersections] are programming errors and panic. Degenerate geometry, such
// as zero-length segments, tangents or missed circles, is reported through
// ordinary return values.
//
// The subpackages position, grid, unionfind, matrix and input hold the integer
// grid utilities that accompany the geometry.
package geom
