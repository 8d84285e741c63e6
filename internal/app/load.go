// Package app contains the hosts that drive a world: the text pipeline of
// cmd/life, the terminal viewer and the ebiten game of cmd/lifegui.
package app

import (
	"io"
	"os"
	"strings"

	"github.com/juju/loggo"
	"github.com/kr/pretty"
	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/automaton"
	"lifeca/internal/structtext"
)

var logger = loggo.GetLogger("lifeca.app")

// Open returns the description named by path. An empty path or "-"
// selects stdin.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, errgo.New("no standard input")
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	return f, nil
}

// ReadDocument reads a description and strips its comments and
// whitespace.
func ReadDocument(r io.Reader) (string, error) {
	doc, err := structtext.ReadClean(r)
	if err != nil {
		return "", errgo.Mask(err)
	}
	return doc, nil
}

// Load reads an automaton description from r and applies the terrain and
// window overrides of cfg.
func Load(r io.Reader, cfg *Config) (automaton.Automaton, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}
	return LoadDocument(doc, cfg)
}

// LoadDocument parses a cleaned description and applies the terrain and
// window overrides of cfg.
func LoadDocument(doc string, cfg *Config) (automaton.Automaton, error) {
	a, err := automaton.Parse(doc)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	if err := ApplyOverrides(a, cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyOverrides applies the terrain and window ranges given on the
// command line.
func ApplyOverrides(a automaton.Automaton, cfg *Config) error {
	if cfg.TerrainX != "" || cfg.TerrainY != "" {
		if err := a.UpdateTerrain(cfg.TerrainX, cfg.TerrainY); err != nil {
			return errgo.NoteMask(err, "cannot override terrain", errgo.Any)
		}
		logger.Debugf("terrain overridden to %v", a.Terrain())
	}
	if cfg.WindowX != "" || cfg.WindowY != "" {
		if err := a.UpdateWindow(cfg.WindowX, cfg.WindowY); err != nil {
			return errgo.NoteMask(err, "cannot override window", errgo.Any)
		}
	}
	return nil
}

// Tree is a parsed description with every struct value parsed in turn.
// Leaves are strings; structs are Trees.
type Tree map[string]interface{}

// ParseTree parses doc and every nested struct inside it.
func ParseTree(doc string) (Tree, error) {
	values, err := structtext.Parse(doc)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	tree := make(Tree, len(values))
	for id, v := range values {
		if !strings.HasPrefix(v, "{") {
			tree[id] = v
			continue
		}
		sub, err := ParseTree(v)
		if err != nil {
			return nil, errgo.NoteMask(err, id, errgo.Any)
		}
		tree[id] = sub
	}
	return tree, nil
}

// DumpValues writes the parsed tree of doc in Go syntax.
func DumpValues(w io.Writer, doc string) error {
	tree, err := ParseTree(doc)
	if err != nil {
		return err
	}
	_, err = pretty.Fprintf(w, "%# v\n", tree)
	return errgo.Mask(err)
}
