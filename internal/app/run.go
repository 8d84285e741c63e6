package app

import (
	"context"
	"fmt"
	"io"

	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/world"
)

// Run is the text host: it reads the description named by args (stdin
// when absent), simulates it for cfg.Generations generations and prints
// the result in the selected output format. With cfg.Terminal set it runs
// the interactive terminal viewer instead.
func Run(ctx context.Context, cfg *Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 1 {
		return errgo.Newf("too many arguments: %q", args[1:])
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := readPath(path, stdin)
	if err != nil {
		return err
	}
	if cfg.Dump {
		return DumpValues(stdout, doc)
	}
	w, err := newWorld(doc, cfg)
	if err != nil {
		return err
	}
	if cfg.Terminal {
		return runTerminal(ctx, NewController(w, cfg))
	}
	n := w.Simulate(cfg.Generations)
	logger.Infof("%s: computed %d of %d generations", w.Name(), n, cfg.Generations)
	return writeOutput(stdout, w, cfg.Output, path)
}

// LoadWorld reads the description at path (stdin for "" or "-") and
// returns a world for it.
func LoadWorld(path string, stdin io.Reader, cfg *Config) (*world.World, error) {
	doc, err := readPath(path, stdin)
	if err != nil {
		return nil, err
	}
	return newWorld(doc, cfg)
}

func readPath(path string, stdin io.Reader) (string, error) {
	r, err := Open(path, stdin)
	if err != nil {
		return "", errgo.Notef(err, "cannot open description")
	}
	defer r.Close()
	return ReadDocument(r)
}

func newWorld(doc string, cfg *Config) (*world.World, error) {
	a, err := LoadDocument(doc, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %s %q on %v", a.Family(), a.Name(), a.Terrain())
	return world.New(a), nil
}

func writeOutput(out io.Writer, w *world.World, format Output, source string) error {
	var err error
	switch format {
	case OutputStruct:
		_, err = fmt.Fprintln(out, w.Automaton().String())
	case OutputYAML:
		s := Summarize(w)
		s.Source = source
		return WriteSummaries(out, s)
	default:
		_, err = io.WriteString(out, w.String())
	}
	return errgo.Mask(err)
}
