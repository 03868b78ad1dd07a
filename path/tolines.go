package path

import (
	"fmt"

	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/point"
)

func pointKey(p grid.Point) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// orientedPoints returns stroke's points in traversal order: the original
// path direction when keepDir is true (reversed when Dir is DirUp, since
// Points is always stored upper-to-lower), or the stored upper-to-lower
// order otherwise.
func orientedPoints(s *Stroke, keepDir bool) []grid.Point {
	if !keepDir || s.Dir == grid.DirDown {
		return s.Points
	}
	rev := make([]grid.Point, len(s.Points))
	for i, p := range s.Points {
		rev[len(s.Points)-1-i] = p
	}
	return rev
}

func commandsFromChain(chain []grid.Point, gridsize float64) []Command {
	toReal := func(p grid.Point) point.Point {
		return point.New(float64(p.X)*gridsize, float64(p.Y)*gridsize)
	}
	cmds := make([]Command, 0, len(chain))
	cmds = append(cmds, Command{Kind: MoveTo, To: toReal(chain[0])})
	for _, p := range chain[1:] {
		cmds = append(cmds, Command{Kind: LineTo, To: toReal(p)})
	}
	return cmds
}

// ToLines reconstructs a MoveTo/LineTo command sequence from poly's stroke
// list, converting grid points back to real coordinates via poly.Gridsize.
// When preserveDirection is set, each stroke is emitted as its own
// sub-path in its original direction; otherwise strokes sharing an
// endpoint are stitched head-to-tail to minimize the number of MoveTo
// commands emitted.
func ToLines(poly *Poly, preserveDirection bool) []Command {
	if preserveDirection {
		var cmds []Command
		for _, s := range poly.Strokes {
			cmds = append(cmds, commandsFromChain(orientedPoints(s, true), poly.Gridsize)...)
		}
		return cmds
	}

	// Build an adjacency index from endpoint to strokes still available for
	// stitching, keyed by whichever of their two endpoints is unused.
	type endpoint struct {
		strokeIdx int
		atUpper   bool
	}
	byPoint := make(map[string][]endpoint)
	for i, s := range poly.Strokes {
		byPoint[pointKey(s.Upper())] = append(byPoint[pointKey(s.Upper())], endpoint{i, true})
		byPoint[pointKey(s.Lower())] = append(byPoint[pointKey(s.Lower())], endpoint{i, false})
	}

	used := make([]bool, len(poly.Strokes))
	takeAt := func(key string) (endpoint, bool) {
		for _, e := range byPoint[key] {
			if !used[e.strokeIdx] {
				return e, true
			}
		}
		return endpoint{}, false
	}

	var cmds []Command
	for i := range poly.Strokes {
		if used[i] {
			continue
		}
		used[i] = true
		chain := append([]grid.Point(nil), poly.Strokes[i].Points...)

		for {
			last := chain[len(chain)-1]
			e, ok := takeAt(pointKey(last))
			if !ok {
				break
			}
			used[e.strokeIdx] = true
			next := poly.Strokes[e.strokeIdx]
			pts := next.Points
			if e.atUpper {
				chain = append(chain, pts[1:]...)
			} else {
				for j := len(pts) - 2; j >= 0; j-- {
					chain = append(chain, pts[j])
				}
			}
		}

		cmds = append(cmds, commandsFromChain(chain, poly.Gridsize)...)
	}
	return cmds
}
