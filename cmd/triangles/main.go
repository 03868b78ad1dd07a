package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/gridpoly"
	"github.com/mikenye/gridpoly/path"
	"github.com/mikenye/gridpoly/wind"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "triangles",
		Usage:     "Unions or intersects two overlapping triangles, printing the resulting area",
		UsageText: "triangles --gridsize <value> --op <union|intersect>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "gridsize",
				Usage:    "Quantization step applied to both triangles before sweeping",
				Value:    0.05,
				OnlyOnce: true,
				Validator: func(g float64) error {
					if g <= 0 {
						return fmt.Errorf("gridsize must be greater than zero")
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:     "op",
				Usage:    "Boolean operation to apply: union or intersect",
				Value:    "union",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print the number of commands in each triangle and of strokes in the result",
			},
		},
		HideVersion: true,
		Action:      run,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// triangle returns a closed triangle outline, matching the turned triangles
// drawn by the original library's canvas-based demo.
func triangle(p1, p2, p3 [2]float64) ([]path.Command, error) {
	c, err := path.NewCanvas(1)
	if err != nil {
		return nil, err
	}
	if err := c.MoveTo(p1[0], p1[1]); err != nil {
		return nil, err
	}
	if err := c.LineTo(p2[0], p2[1]); err != nil {
		return nil, err
	}
	if err := c.LineTo(p3[0], p3[1]); err != nil {
		return nil, err
	}
	if err := c.Close(); err != nil {
		return nil, err
	}
	return c.Result(), nil
}

func run(_ context.Context, cmd *cli.Command) error {
	gridsize := cmd.Float("gridsize")
	op := cmd.String("op")
	verbose := cmd.Bool("verbose")

	t1, err := triangle([2]float64{0, -100}, [2]float64{-100, 100}, [2]float64{10, 100})
	if err != nil {
		return err
	}
	t2, err := triangle([2]float64{-50, -100}, [2]float64{-50, 100}, [2]float64{100, 100})
	if err != nil {
		return err
	}

	var rule wind.Rule
	switch op {
	case "union":
		rule = wind.Union
	case "intersect":
		rule = wind.Intersect
	default:
		return fmt.Errorf("unknown op %q: must be union or intersect", op)
	}

	var moments gridpoly.Moments
	poly, err := gridpoly.Process(t1, t2, rule, &wind.Context{NumPolygons: 2}, &moments, gridpoly.WithGridsize(gridsize))
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("triangle 1: %d commands, triangle 2: %d commands\n", len(t1), len(t2))
		fmt.Printf("result: %d strokes\n", len(poly.Strokes))
	}
	fmt.Printf("%s area: %v\n", op, moments.Area)
	return nil
}
