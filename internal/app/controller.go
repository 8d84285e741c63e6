package app

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"lifeca/internal/core"
	"lifeca/internal/ui"
	"lifeca/internal/world"
)

// Action is an input command understood by the interactive hosts.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlay
	ActionStep
	ActionRestart
	ActionToggleGrid
	ActionSlower
	ActionFaster
	ActionZoomIn
	ActionZoomOut
	ActionQuit
)

// ActionForKey returns the action bound to a key.
func ActionForKey(r rune) Action {
	switch unicode.ToLower(r) {
	case ' ':
		return ActionTogglePlay
	case 'n':
		return ActionStep
	case 'r':
		return ActionRestart
	case 'g':
		return ActionToggleGrid
	case '[':
		return ActionSlower
	case ']':
		return ActionFaster
	case '+', '=':
		return ActionZoomIn
	case '-':
		return ActionZoomOut
	case 'q':
		return ActionQuit
	}
	return ActionNone
}

const (
	paramScale   = "scale"
	paramDelay   = "delay"
	paramPlaying = "playing"
)

var (
	scaleControl = core.ParameterControl{Key: paramScale, Label: "Scale", Step: 1, Min: MinScale, Max: MaxScale}
	delayControl = core.ParameterControl{Key: paramDelay, Label: "Delay (ms)", Step: 50, Min: MinDelayMS, Max: MaxDelayMS}
)

// Controller holds the playback state shared by the interactive hosts and
// steps the world when a generation is due.
type Controller struct {
	world    *world.World
	playback *core.Playback
	scale    int
	grid     bool
	quit     bool
}

// NewController returns a paused controller for w.
func NewController(w *world.World, cfg *Config) *Controller {
	return &Controller{
		world:    w,
		playback: core.NewPlayback(time.Duration(cfg.DelayMS) * time.Millisecond),
		scale:    cfg.Scale,
		grid:     true,
	}
}

// World returns the world being driven.
func (c *Controller) World() *world.World { return c.world }

func (c *Controller) Name() string      { return c.world.Name() }
func (c *Controller) Size() core.Size   { return c.world.Size() }
func (c *Controller) Generation() int   { return c.world.Generation() }
func (c *Controller) Step()             { c.world.Step() }
func (c *Controller) Playing() bool     { return c.playback.Playing() }
func (c *Controller) Scale() int        { return c.scale }
func (c *Controller) Quit() bool        { return c.quit }
func (c *Controller) GridEnabled() bool { return c.grid }

// Reset restarts the world from its initial cells and pauses playback.
func (c *Controller) Reset() {
	c.playback.Stop()
	c.world.Reset()
}

// Delay returns the delay between generations while playing.
func (c *Controller) Delay() time.Duration { return c.playback.Delay() }

// GridLines reports whether cell borders should be drawn.
func (c *Controller) GridLines() bool { return c.grid && ui.GridLinesVisible(c.scale) }

// Do performs an action.
func (c *Controller) Do(a Action) {
	switch a {
	case ActionTogglePlay:
		c.playback.Toggle()
	case ActionStep:
		c.world.Step()
	case ActionRestart:
		c.Reset()
	case ActionToggleGrid:
		c.grid = !c.grid
	case ActionSlower:
		c.adjust(delayControl, 1)
	case ActionFaster:
		c.adjust(delayControl, -1)
	case ActionZoomIn:
		c.adjust(scaleControl, 1)
	case ActionZoomOut:
		c.adjust(scaleControl, -1)
	case ActionQuit:
		c.quit = true
	}
}

func (c *Controller) adjust(ctrl core.ParameterControl, direction int) {
	if v, ok := ui.NextValue(ctrl, c.intParameter(ctrl.Key), direction); ok {
		c.SetIntParameter(ctrl.Key, v)
	}
}

func (c *Controller) intParameter(key string) int {
	switch key {
	case paramScale:
		return c.scale
	case paramDelay:
		return int(c.playback.Delay() / time.Millisecond)
	}
	return 0
}

// Tick steps the world when playing and a generation is due. It reports
// whether it stepped.
func (c *Controller) Tick() bool {
	if !c.playback.ShouldStep() {
		return false
	}
	c.world.Step()
	return true
}

// Parameters returns the world snapshot followed by the playback settings.
func (c *Controller) Parameters() core.ParameterSnapshot {
	snap := c.world.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: paramPlaying, Label: "Playing", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.Playing())},
			{Key: paramScale, Label: scaleControl.Label, Type: core.ParamTypeInt, Value: strconv.Itoa(c.scale)},
			{Key: paramDelay, Label: delayControl.Label, Type: core.ParamTypeInt, Value: strconv.Itoa(c.intParameter(paramDelay))},
		},
	})
	return snap
}

// ParameterControls lists the settings adjustable from the control panel.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{scaleControl, delayControl}
}

// SetIntParameter sets the scale or the delay. Values outside the limits
// are rejected.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case paramScale:
		if value < MinScale || value > MaxScale {
			return false
		}
		c.scale = value
	case paramDelay:
		if value < MinDelayMS || value > MaxDelayMS {
			return false
		}
		c.playback.SetDelay(time.Duration(value) * time.Millisecond)
	default:
		return false
	}
	logger.Debugf("%s set to %d", key, value)
	return true
}

// Status returns a one-line description of the playback state.
func (c *Controller) Status() string {
	state := "paused"
	if c.Playing() {
		state = "playing"
	}
	if c.world.Stable() {
		state += ", stable"
	}
	return fmt.Sprintf("%s  generation %d  %s  delay %dms", c.Name(), c.Generation(), state, c.intParameter(paramDelay))
}

var (
	_ core.Sim                       = (*Controller)(nil)
	_ core.ParameterControlsProvider = (*Controller)(nil)
	_ core.IntParameterSetter        = (*Controller)(nil)
)
