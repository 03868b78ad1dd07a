// Package glyphpath adapts a TrueType glyph outline into the path
// package's drawing-command representation, so a font's own letterforms
// can be fed through the sweep engine as ordinary input polygons (used
// only by the cmd/glyphs example).
package glyphpath

import (
	"errors"
	"fmt"

	"github.com/mikenye/gridpoly/path"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidInput is returned for a font that fails to parse, a rune with
// no glyph, or a glyph outline containing a cubic (CFF/OpenType) segment —
// this loader only handles TrueType's native quadratic outlines.
var ErrInvalidInput = errors.New("glyphpath: invalid input")

// Load parses a TrueType font from data and returns r's outline as a
// drawing command sequence, scaled to ppem pixels per em.
func Load(data []byte, r rune, ppem float64) ([]path.Command, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ErrInvalidInput, err)
	}

	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("%w: looking up glyph for %q: %v", ErrInvalidInput, r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w: font has no glyph for %q", ErrInvalidInput, r)
	}

	segments, err := f.LoadGlyph(&buf, gid, fixed.I(int(ppem)), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: loading glyph outline: %v", ErrInvalidInput, err)
	}

	return commandsFromSegments(segments)
}

func commandsFromSegments(segments sfnt.Segments) ([]path.Command, error) {
	var cmds []path.Command
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := pt(seg.Args[0])
			cmds = append(cmds, path.NewMoveTo(x, y))
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			cmds = append(cmds, path.NewLineTo(x, y))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			cmds = append(cmds, path.NewSplineTo(cx, cy, x, y))
		case sfnt.SegmentOpCubeTo:
			return nil, fmt.Errorf("%w: glyph outline contains a cubic segment, only TrueType quadratics are supported", ErrInvalidInput)
		default:
			return nil, fmt.Errorf("%w: unrecognized glyph segment op %v", ErrInvalidInput, seg.Op)
		}
	}
	return cmds, nil
}

func pt(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
