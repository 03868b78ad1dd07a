package grid

import "sort"

// Xrow is a sorted, deduplicated set of x-coordinates observed on one
// scanline. The sweep driver uses it once per scanline to snap crossings and
// endpoint x positions to the grid columns already in play at that y.
type Xrow struct {
	xs []int32
}

// NewXrow returns an empty Xrow.
func NewXrow() *Xrow {
	return &Xrow{}
}

// Add inserts x into the row if it is not already present, keeping xs
// sorted.
func (r *Xrow) Add(x int32) {
	i := sort.Search(len(r.xs), func(i int) bool { return r.xs[i] >= x })
	if i < len(r.xs) && r.xs[i] == x {
		return
	}
	r.xs = append(r.xs, 0)
	copy(r.xs[i+1:], r.xs[i:])
	r.xs[i] = x
}

// Len returns the number of distinct x-coordinates in the row.
func (r *Xrow) Len() int {
	return len(r.xs)
}

// Reset empties the row for reuse on the next scanline.
func (r *Xrow) Reset() {
	r.xs = r.xs[:0]
}

// Nearest returns the entry in the row closest to x, along with whether the
// row is non-empty. Ties favor the smaller coordinate.
func (r *Xrow) Nearest(x int32) (int32, bool) {
	if len(r.xs) == 0 {
		return 0, false
	}
	i := sort.Search(len(r.xs), func(i int) bool { return r.xs[i] >= x })
	switch {
	case i == 0:
		return r.xs[0], true
	case i == len(r.xs):
		return r.xs[len(r.xs)-1], true
	default:
		lo, hi := r.xs[i-1], r.xs[i]
		if x-lo <= hi-x {
			return lo, true
		}
		return hi, true
	}
}

// Contains reports whether x is present in the row.
func (r *Xrow) Contains(x int32) bool {
	i := sort.Search(len(r.xs), func(i int) bool { return r.xs[i] >= x })
	return i < len(r.xs) && r.xs[i] == x
}

// Values returns the row's entries in ascending order. The returned slice
// must not be modified by the caller.
func (r *Xrow) Values() []int32 {
	return r.xs
}
