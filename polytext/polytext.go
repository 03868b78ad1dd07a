// Package polytext implements a line-oriented text format for saving and
// loading the floating-point path commands the path package works with:
// one "x y moveto" / "x y lineto" line per point, with an optional
// "% gridsize value" header line recording the quantization the points
// were authored at. SplineTo is not representable in this format: Save
// rejects it, so curves are flattened into LineTo commands before Save.
package polytext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikenye/gridpoly/path"
)

// ErrInvalidInput is returned for malformed text input or a command
// sequence this format cannot represent.
var ErrInvalidInput = errors.New("polytext: invalid input")

// LoadStats reports what Load read: the point count, mirroring the
// original format's stderr summary line, and the most recently declared
// gridsize (0 if the stream never declared one).
type LoadStats struct {
	Points   int
	Gridsize float64
}

// Save writes cmds as polytext, preceded by a "% gridsize" header line.
// MoveTo and LineTo are written verbatim; SplineTo is rejected since this
// format has no curve command.
func Save(w io.Writer, cmds []path.Command, gridsize float64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%% gridsize %v\n", gridsize); err != nil {
		return err
	}
	for _, cmd := range cmds {
		x, y := cmd.To.Coordinates()
		switch cmd.Kind {
		case path.MoveTo:
			if _, err := fmt.Fprintf(bw, "%v %v moveto\n", x, y); err != nil {
				return err
			}
		case path.LineTo:
			if _, err := fmt.Fprintf(bw, "%v %v lineto\n", x, y); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: polytext cannot represent command kind %v", ErrInvalidInput, cmd.Kind)
		}
	}
	return bw.Flush()
}

// Load reads a polytext stream into a path.Command sequence and reports
// LoadStats alongside it. A "% gridsize" line may appear more than once;
// each occurrence overwrites the gridsize recorded in LoadStats, so only
// the last declared value is reported. Points are returned exactly as
// written; no gridsize is applied to them.
//
// Any run of leading CR/LF bytes before a line is skipped before that
// line is parsed. This resolves an ambiguity in the format's original C
// reader, whose equivalent loop condition (c != 10 || c != 13) is always
// true and so never actually skips anything; skipping leading CR/LF here
// is the behavior that loop was evidently meant to have, not a replica of
// the bug.
func Load(r io.Reader) ([]path.Command, LoadStats, error) {
	scanner := bufio.NewScanner(r)
	var cmds []path.Command
	var stats LoadStats

	for scanner.Scan() {
		line := strings.Trim(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		if g, ok, err := parseGridsizeLine(line); err != nil {
			return nil, LoadStats{}, err
		} else if ok {
			stats.Gridsize = g
			continue
		}

		cmd, err := parsePointLine(line)
		if err != nil {
			return nil, LoadStats{}, err
		}
		cmds = append(cmds, cmd)
		stats.Points++
	}
	if err := scanner.Err(); err != nil {
		return nil, LoadStats{}, err
	}
	return cmds, stats, nil
}

func parseGridsizeLine(line string) (gridsize float64, ok bool, err error) {
	rest, found := strings.CutPrefix(line, "% gridsize")
	if !found {
		return 0, false, nil
	}
	g, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: malformed gridsize line %q: %v", ErrInvalidInput, line, err)
	}
	return g, true, nil
}

func parsePointLine(line string) (path.Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return path.Command{}, fmt.Errorf("%w: malformed line %q", ErrInvalidInput, line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return path.Command{}, fmt.Errorf("%w: bad x coordinate in %q: %v", ErrInvalidInput, line, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return path.Command{}, fmt.Errorf("%w: bad y coordinate in %q: %v", ErrInvalidInput, line, err)
	}
	switch fields[2] {
	case "moveto":
		return path.NewMoveTo(x, y), nil
	case "lineto":
		return path.NewLineTo(x, y), nil
	default:
		return path.Command{}, fmt.Errorf("%w: invalid command %q", ErrInvalidInput, fields[2])
	}
}
