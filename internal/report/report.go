// Package report turns solved schematics into results and renders them
// as text, YAML or JSON.
package report

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/schematic/schematic"
)

// ErrUnknownFormat indicates a format name Render does not support.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects a renderer.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

// Result is the outcome of solving one input.
type Result struct {
	Source  string `yaml:"source" json:"source"`
	Width   int    `yaml:"width" json:"width"`
	Height  int    `yaml:"height" json:"height"`
	Numbers int    `yaml:"numbers" json:"numbers"`
	Part1   uint64 `yaml:"part1" json:"part1"`
	Part2   uint64 `yaml:"part2" json:"part2"`

	PartNumbers []uint64 `yaml:"part_numbers,omitempty" json:"part_numbers,omitempty"`
	Gears       []Gear   `yaml:"gears,omitempty" json:"gears,omitempty"`
}

// Gear is the serialisable form of schematic.Gear.
type Gear struct {
	X     int       `yaml:"x" json:"x"`
	Y     int       `yaml:"y" json:"y"`
	Parts [2]uint64 `yaml:"parts,flow" json:"parts"`
	Ratio uint64    `yaml:"ratio" json:"ratio"`
}

// FromSchematic solves s and summarises it. With detail set, the distinct
// part numbers and every gear are listed as well.
func FromSchematic(source string, s *schematic.Schematic, detail bool) Result {
	r := Result{
		Source:  source,
		Width:   s.Width,
		Height:  s.Height,
		Numbers: len(s.Numbers()),
		Part1:   schematic.SolvePart1(s),
		Part2:   schematic.SolvePart2(s),
	}
	if !detail {
		return r
	}
	for _, sp := range s.PartNumbers() {
		r.PartNumbers = append(r.PartNumbers, sp.Value)
	}
	for _, g := range s.GearRatios() {
		r.Gears = append(r.Gears, Gear{
			X:     g.At.X,
			Y:     g.At.Y,
			Parts: [2]uint64{g.Parts[0].Value, g.Parts[1].Value},
			Ratio: g.Ratio,
		})
	}
	return r
}

// Render writes results to w in the given format.
func Render(w io.Writer, f Format, results []Result) error {
	switch f {
	case Text:
		return renderText(w, results)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

func renderText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: part1=%d part2=%d\n", r.Source, r.Part1, r.Part2); err != nil {
			return err
		}
		if len(r.PartNumbers) > 0 {
			if _, err := fmt.Fprintf(w, "  part numbers: %v\n", r.PartNumbers); err != nil {
				return err
			}
		}
		for _, g := range r.Gears {
			if _, err := fmt.Fprintf(w, "  gear (%d,%d): %d * %d = %d\n", g.X, g.Y, g.Parts[0], g.Parts[1], g.Ratio); err != nil {
				return err
			}
		}
	}
	return nil
}
