package app

import (
	"io"
	"strings"

	errgo "gopkg.in/errgo.v1"
	yaml "gopkg.in/yaml.v2"

	"lifeca/internal/core"
	"lifeca/internal/world"
)

// Summary is the YAML form of a world after simulation.
type Summary struct {
	Source     string                `yaml:"source,omitempty"`
	Name       string                `yaml:"name,omitempty"`
	Family     string                `yaml:"family,omitempty"`
	Generation int                   `yaml:"generation"`
	Stable     bool                  `yaml:"stable"`
	Parameters []core.ParameterGroup `yaml:"parameters,omitempty"`
	Grid       []string              `yaml:"grid,omitempty"`
	Error      string                `yaml:"error,omitempty"`
}

// Summarize captures the state of w.
func Summarize(w *world.World) Summary {
	grid := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	return Summary{
		Name:       w.Name(),
		Family:     string(w.Automaton().Family()),
		Generation: w.Generation(),
		Stable:     w.Stable(),
		Parameters: w.Parameters().Groups,
		Grid:       grid,
	}
}

// WriteSummary writes the YAML summary of w.
func WriteSummary(out io.Writer, w *world.World) error {
	return WriteSummaries(out, Summarize(w))
}

// WriteSummaries writes each summary as its own YAML document.
func WriteSummaries(out io.Writer, summaries ...Summary) error {
	for i, s := range summaries {
		data, err := yaml.Marshal(s)
		if err != nil {
			return errgo.Notef(err, "cannot marshal summary of %q", s.Name)
		}
		if i > 0 {
			if _, err := io.WriteString(out, "---\n"); err != nil {
				return errgo.Mask(err)
			}
		}
		if _, err := out.Write(data); err != nil {
			return errgo.Mask(err)
		}
	}
	return nil
}
