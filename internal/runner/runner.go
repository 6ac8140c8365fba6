// Package runner solves several schematic inputs concurrently.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/schematic/internal/report"
	"github.com/katalvlaran/schematic/schematic"
)

// Input is one named schematic source. Read is called at most once,
// from a worker goroutine.
type Input struct {
	Name string
	Read func() ([]byte, error)
}

// Options controls a Run.
type Options struct {
	// Workers bounds concurrent solves; values < 1 mean 1.
	Workers int
	// Detail is passed through to report.FromSchematic.
	Detail bool
}

// summarize solves s, turning a panic (a number wider than uint64) into
// an error for that input.
func summarize(name string, s *schematic.Schematic, detail bool) (r report.Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %v", name, p)
		}
	}()
	return report.FromSchematic(name, s, detail), nil
}

// Run parses and solves every input, at most opts.Workers at a time.
// Results are returned in input order. The first failure cancels the
// remaining inputs and is returned wrapped with the input name.
func Run(ctx context.Context, log *zap.Logger, inputs []Input, opts Options) ([]report.Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]report.Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			log.Debug("solving", zap.String("input", in.Name))

			data, err := in.Read()
			if err != nil {
				return fmt.Errorf("%s: read: %w", in.Name, err)
			}
			s, err := schematic.Parse(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			if results[i], err = summarize(in.Name, s, opts.Detail); err != nil {
				return err
			}

			log.Info("solved",
				zap.String("input", in.Name),
				zap.Int("width", s.Width),
				zap.Int("height", s.Height),
				zap.Uint64("part1", results[i].Part1),
				zap.Uint64("part2", results[i].Part2),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("solve aborted", zap.Error(err))
		return nil, err
	}
	return results, nil
}
