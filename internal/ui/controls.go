package ui

import "lifeca/internal/core"

// MinGridScale is the smallest cell size, in pixels, at which cell borders
// are drawn.
const MinGridScale = 4

// GridLinesVisible reports whether cell borders fit at the given scale.
func GridLinesVisible(scale int) bool { return scale >= MinGridScale }

// NextValue returns the value of ctrl after one press in direction (-1 or
// +1), clamped to its limits, and whether that differs from value.
func NextValue(ctrl core.ParameterControl, value, direction int) (int, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.Max > ctrl.Min && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != value
}
