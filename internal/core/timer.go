package core

import "time"

// Playback paces generation steps for the interactive hosts. A zero delay
// steps on every poll.
type Playback struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
	playing     bool

	now func() time.Time
}

// NewPlayback returns a paused Playback with the given delay between
// generations.
func NewPlayback(delay time.Duration) *Playback {
	p := &Playback{now: time.Now}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the delay between generations. It is safe to call from
// the main loop while playing.
func (p *Playback) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	p.delay = delay
	if p.accumulator > delay {
		p.accumulator = delay
	}
}

// Delay returns the current delay between generations.
func (p *Playback) Delay() time.Duration { return p.delay }

// Playing reports whether generations are currently being paced.
func (p *Playback) Playing() bool { return p.playing }

// Play starts pacing. The first generation is due after one full delay.
func (p *Playback) Play() {
	if p.playing {
		return
	}
	p.playing = true
	p.accumulator = 0
	p.last = time.Time{}
}

// Stop pauses pacing.
func (p *Playback) Stop() { p.playing = false }

// Toggle flips between playing and paused.
func (p *Playback) Toggle() {
	if p.playing {
		p.Stop()
		return
	}
	p.Play()
}

// ShouldStep reports whether the next generation is due.
func (p *Playback) ShouldStep() bool {
	if !p.playing {
		return false
	}
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.delay {
		p.accumulator -= p.delay
		return true
	}
	return false
}
