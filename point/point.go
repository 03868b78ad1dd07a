// Package point defines Point, the floating-point coordinate pair used to
// describe polygon input before it is quantized onto the integer sweep grid
// (see the grid package for the post-quantization representation).
//
// # Overview
//
// Point carries the vector arithmetic the path package needs to validate and
// flatten input paths: translation, rotation, scaling, the 2D cross product
// (used for orientation and degenerate-segment checks), and epsilon-tolerant
// equality.
//
// # Equality
//
//   - Eq checks exact or approximate equality. Pass [options.WithEpsilon] to
//     treat coordinate differences within the given tolerance as equal.
package point

import (
	"encoding/json"
	"fmt"
	"github.com/mikenye/gridpoly/numeric"
	"github.com/mikenye/gridpoly/options"
	"github.com/mikenye/gridpoly/types"
	"math"
)

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// Origin returns the point (0, 0).
func Origin() Point {
	return Point{}
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// AngleBetween returns the angle in radians, in the range [0, π], between the
// rays origin->a and origin->b. Returns NaN if either ray has zero length.
func (p Point) AngleBetween(a, b Point) float64 {
	va, vb := a.Sub(p), b.Sub(p)
	denom := math.Sqrt(va.DotProduct(va)) * math.Sqrt(vb.DotProduct(vb))
	if denom == 0 {
		return math.NaN()
	}
	cosine := va.DotProduct(vb) / denom
	// Clamp against floating-point drift pushing the argument just outside [-1, 1].
	cosine = math.Max(-1, math.Min(1, cosine))
	return math.Acos(cosine)
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CosineOfAngleBetween returns the cosine of the angle between the rays
// origin->a and origin->b, without the cost of an arccosine call.
func (p Point) CosineOfAngleBetween(a, b Point) float64 {
	va, vb := a.Sub(p), b.Sub(p)
	denom := math.Sqrt(va.DotProduct(va)) * math.Sqrt(vb.DotProduct(vb))
	if denom == 0 {
		return math.NaN()
	}
	return va.DotProduct(vb) / denom
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x * b.y - a.y * b.x
//
// A positive result indicates a counterclockwise turn, negative a clockwise
// turn, and zero indicates the points are collinear.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q,
// avoiding the square root of [Point.DistanceToPoint] where only comparisons matter.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	d := p.Sub(q)
	return d.DotProduct(d)
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// DotProduct calculates the dot product of the vector represented by Point p with the vector represented by Point q.
func (p Point) DotProduct(q Point) float64 {
	return (p.x * q.x) + (p.y * q.y)
}

// Eq determines whether p and q are equal, optionally within an epsilon tolerance.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) && numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{p.x, p.y})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(data []byte) error {
	var raw struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.x, p.y = raw.X, raw.Y
	return nil
}

// Negate returns a new Point with both x and y coordinates negated.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// RelationshipToPoint determines the spatial relationship of p to q: either
// they occupy the same coordinates ([types.RelationshipEqual]) or they don't
// ([types.RelationshipDisjoint]).
func (p Point) RelationshipToPoint(q Point, opts ...options.GeometryOptionsFunc) types.Relationship {
	if p.Eq(q, opts...) {
		return types.RelationshipEqual
	}
	return types.RelationshipDisjoint
}

// Rotate rotates p by angle radians (counterclockwise) about pivot.
func (p Point) Rotate(pivot Point, radians float64) Point {
	d := p.Sub(pivot)
	sin, cos := math.Sin(radians), math.Cos(radians)
	return pivot.Add(New(d.x*cos-d.y*sin, d.x*sin+d.y*cos))
}

// Scale scales p by factor relative to ref.
func (p Point) Scale(ref Point, factor float64) Point {
	return ref.Add(p.Sub(ref).scaledBy(factor))
}

func (p Point) scaledBy(factor float64) Point {
	return New(p.x*factor, p.y*factor)
}

// String returns a string representation of the Point in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.x, p.y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}
