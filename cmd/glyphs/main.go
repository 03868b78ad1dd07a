package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mikenye/gridpoly"
	"github.com/mikenye/gridpoly/glyphpath"
	"github.com/mikenye/gridpoly/wind"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "glyphs",
		Usage:     "Loads a TrueType glyph outline, self-normalizes it, and prints its stroke count and area",
		UsageText: "glyphs --font <path> --rune <char> --gridsize <value> --ppem <value>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "font",
				Usage:    "Path to a TrueType (.ttf) font file",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "rune",
				Usage:    "The single character to load a glyph outline for",
				Value:    "A",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "ppem",
				Usage:    "Pixels-per-em to scale the glyph outline to",
				Value:    64,
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "gridsize",
				Usage:    "Quantization step applied before sweeping",
				Value:    0.1,
				OnlyOnce: true,
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

func run(_ context.Context, cmd *cli.Command) error {
	fontPath := cmd.String("font")
	runeFlag := cmd.String("rune")
	ppem := cmd.Float("ppem")
	gridsize := cmd.Float("gridsize")

	if len([]rune(runeFlag)) != 1 {
		return fmt.Errorf("--rune must be exactly one character, got %q", runeFlag)
	}
	r := []rune(runeFlag)[0]

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}

	cmds, err := glyphpath.Load(data, r, ppem)
	if err != nil {
		return err
	}

	var moments gridpoly.Moments
	poly, err := gridpoly.Process(cmds, nil, wind.NonZero, &wind.Context{NumPolygons: 1}, &moments, gridpoly.WithGridsize(gridsize))
	if err != nil {
		return err
	}

	fmt.Printf("glyph %q: %d strokes, area %v\n", r, len(poly.Strokes), moments.Area)
	return nil
}
