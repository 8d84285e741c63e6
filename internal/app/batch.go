package app

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
	errgo "gopkg.in/errgo.v1"
)

// BatchConfig holds the settings of the batch host.
type BatchConfig struct {
	Generations int
	Workers     int
}

// RunBatch simulates every description in paths for cfg.Generations
// generations, at most cfg.Workers at a time, and writes one YAML summary
// per description in the order given. A description that cannot be read
// is reported in its summary and does not stop the others; RunBatch then
// returns an error once every summary has been written.
func RunBatch(ctx context.Context, cfg BatchConfig, paths []string, out io.Writer) error {
	summaries := make([]Summary, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summaries[i] = simulateFile(path, cfg.Generations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	if err := WriteSummaries(out, summaries...); err != nil {
		return err
	}
	failed := 0
	for _, s := range summaries {
		if s.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return errgo.Newf("%d of %d descriptions failed", failed, len(paths))
	}
	return nil
}

func simulateFile(path string, generations int) Summary {
	if path == "" || path == "-" {
		return Summary{Source: path, Error: "standard input cannot be read in batch mode"}
	}
	w, err := LoadWorld(path, nil, NewConfig())
	if err != nil {
		logger.Warningf("%s: %v", path, err)
		return Summary{Source: path, Error: err.Error()}
	}
	n := w.Simulate(generations)
	logger.Debugf("%s: computed %d generations", path, n)
	s := Summarize(w)
	s.Source = path
	return s
}
