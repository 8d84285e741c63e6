package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/juju/gnuflag"
	errgo "gopkg.in/errgo.v1"
)

// Output selects what the text host prints after simulating.
type Output int

const (
	// OutputGrid prints one glyph per cell of the view.
	OutputGrid Output = iota
	// OutputStruct prints the automaton as struct text, its Initial
	// holding the cells alive after the last generation.
	OutputStruct
	// OutputYAML prints a YAML summary of the world.
	OutputYAML
)

func (o Output) String() string {
	switch o {
	case OutputStruct:
		return "struct"
	case OutputYAML:
		return "yaml"
	}
	return "grid"
}

// Config holds the command-line settings shared by the hosts.
type Config struct {
	Generations int
	Output      Output

	TerrainX string
	TerrainY string
	WindowX  string
	WindowY  string

	Scale    int
	Control  bool
	DelayMS  int
	Terminal bool

	Dump bool
	Log  string
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Scale:   10,
		DelayMS: 250,
		Log:     "<root>=WARNING",
	}
}

// Bind attaches the configuration to the provided FlagSet. Single letter
// names are given a GNU-style long form where one exists.
func (c *Config) Bind(fs *gnuflag.FlagSet) {
	fs.IntVar(&c.Generations, "g", c.Generations, "number of generations to simulate")
	fs.IntVar(&c.Generations, "generations", c.Generations, "")
	fs.Var(&outputFlag{target: &c.Output, value: OutputStruct}, "f", "print the automaton as struct text")
	fs.Var(&outputFlag{target: &c.Output, value: OutputGrid}, "v", "print the grid (default)")
	fs.Var(&outputFlag{target: &c.Output, value: OutputYAML}, "yaml", "print a YAML summary")
	fs.StringVar(&c.TerrainX, "tx", c.TerrainX, "override the terrain x range, `l..h`")
	fs.StringVar(&c.TerrainY, "ty", c.TerrainY, "override the terrain y range, `l..h`")
	fs.StringVar(&c.WindowX, "wx", c.WindowX, "override the window x range, `l..h`")
	fs.StringVar(&c.WindowY, "wy", c.WindowY, "override the window y range, `l..h`")
	fs.IntVar(&c.Scale, "s", c.Scale, "size in pixels of a cell in the GUI")
	fs.IntVar(&c.Scale, "scale", c.Scale, "")
	fs.BoolVar(&c.Control, "c", c.Control, "show the GUI control panel")
	fs.BoolVar(&c.Control, "control", c.Control, "")
	fs.IntVar(&c.DelayMS, "d", c.DelayMS, "delay in milliseconds between generations when playing")
	fs.IntVar(&c.DelayMS, "delay", c.DelayMS, "")
	fs.BoolVar(&c.Terminal, "t", c.Terminal, "run the interactive terminal viewer")
	fs.BoolVar(&c.Terminal, "terminal", c.Terminal, "")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the parsed description tree and exit")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration, for example `<root>=DEBUG`")
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	switch {
	case c.Generations < 0:
		return errgo.Newf("number of generations must not be negative, got %d", c.Generations)
	case c.Scale < MinScale || c.Scale > MaxScale:
		return errgo.Newf("scale must be within %d-%d, got %d", MinScale, MaxScale, c.Scale)
	case c.DelayMS < MinDelayMS || c.DelayMS > MaxDelayMS:
		return errgo.Newf("delay must be within %d-%d ms, got %d", MinDelayMS, MaxDelayMS, c.DelayMS)
	}
	return nil
}

// Limits of the interactive settings.
const (
	MinScale   = 1
	MaxScale   = 100
	MinDelayMS = 0
	MaxDelayMS = 10000
)

// ParseArgs parses the command line of the text and GUI hosts. It returns
// the remaining positional arguments. Usage is written to stderr on
// error; gnuflag.ErrHelp is returned for -h.
func ParseArgs(name string, args []string, stderr io.Writer) (*Config, []string, error) {
	cfg := NewConfig()
	fs := gnuflag.NewFlagSet(name, gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] [file]\n\n", name)
		fmt.Fprintf(stderr, "Simulate the cellular automaton described in file, or standard input\n")
		fmt.Fprintf(stderr, "when file is absent or -.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(true, args); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return nil, nil, errgo.Mask(err)
	}
	return cfg, fs.Args(), nil
}

// outputFlag is a boolean flag that selects an output format. Several of
// them share one target so the last one given wins.
type outputFlag struct {
	target *Output
	value  Output
}

func (f *outputFlag) IsBoolFlag() bool { return true }

func (f *outputFlag) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool(*f.target == f.value)
}

func (f *outputFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.value
	}
	return nil
}
