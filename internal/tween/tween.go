package tween

import "math"

// Prop binds one animated value. Get reads the current value when the
// tween starts; Set receives every interpolated value; End is the value
// the tween arrives at.
type Prop struct {
	Get func() float64
	Set func(float64)
	End float64
}

// Tween interpolates a group of properties on one target.
type Tween struct {
	// Target identifies what the tween animates. Engines compare it to find
	// tweens to overwrite, so it must be comparable (usually a pointer).
	Target any

	OnStart    func(*Tween)
	OnUpdate   func(*Tween)
	OnComplete func(*Tween)

	fps      int
	duration float64
	delay    float64
	ease     Ease
	props    []Prop

	frame     int
	begin     []float64
	completed bool
}

// New creates a tween running at fps frames per second. A nil ease
// defaults to QuadEaseOut.
func New(target any, fps int, duration float64, props []Prop, ease Ease) *Tween {
	if ease == nil {
		ease = QuadEaseOut
	}
	if fps <= 0 {
		fps = 60
	}
	return &Tween{
		Target:   target,
		fps:      fps,
		duration: duration,
		ease:     ease,
		props:    props,
	}
}

// WithDelay postpones the start by the given number of seconds.
func (tw *Tween) WithDelay(seconds float64) *Tween {
	tw.delay = seconds
	return tw
}

func (tw *Tween) secondsToFrames(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Ceil(float64(tw.fps) * seconds))
}

// DurationFrames is the number of frames spent interpolating.
func (tw *Tween) DurationFrames() int { return tw.secondsToFrames(tw.duration) }

// DelayFrames is the number of frames before the tween starts.
func (tw *Tween) DelayFrames() int { return tw.secondsToFrames(tw.delay) }

// TotalFrames is DelayFrames plus DurationFrames.
func (tw *Tween) TotalFrames() int { return tw.DelayFrames() + tw.DurationFrames() }

// Frame returns the number of updates applied so far.
func (tw *Tween) Frame() int { return tw.frame }

// Started reports whether the delay has elapsed.
func (tw *Tween) Started() bool { return tw.frame >= tw.DelayFrames() }

// Complete reports whether the last frame has been reached.
func (tw *Tween) Complete() bool { return tw.frame >= tw.TotalFrames() }

// Update advances one frame, fires callbacks and writes the new values.
func (tw *Tween) Update() {
	if tw.completed {
		return
	}
	tw.frame++

	if tw.Started() && tw.begin == nil {
		tw.captureBegin()
		if tw.OnStart != nil {
			tw.OnStart(tw)
		}
	} else if tw.begin != nil && tw.OnUpdate != nil {
		tw.OnUpdate(tw)
	}

	tw.apply()

	if tw.Complete() {
		tw.finish()
	}
}

// Kill jumps to the end values and completes the tween.
func (tw *Tween) Kill() {
	if tw.completed {
		return
	}
	if tw.begin == nil {
		tw.captureBegin()
	}
	tw.frame = tw.TotalFrames()
	tw.apply()
	tw.finish()
}

// Reset rewinds the tween so it can run again. Begin values are captured
// afresh on the next start.
func (tw *Tween) Reset() {
	tw.frame = 0
	tw.begin = nil
	tw.completed = false
}

func (tw *Tween) finish() {
	tw.completed = true
	if tw.OnComplete != nil {
		tw.OnComplete(tw)
	}
}

func (tw *Tween) captureBegin() {
	tw.begin = make([]float64, len(tw.props))
	for i, p := range tw.props {
		if p.Get != nil {
			tw.begin[i] = p.Get()
		}
	}
}

// apply writes the values for the current frame. The last duration frame
// snaps to End so rounding never leaves a property short.
func (tw *Tween) apply() {
	if tw.begin == nil || !tw.Started() {
		return
	}
	durationFrames := tw.DurationFrames()
	elapsed := tw.frame - tw.DelayFrames()

	for i, p := range tw.props {
		if p.Set == nil {
			continue
		}
		if elapsed >= durationFrames-1 {
			p.Set(p.End)
			continue
		}
		t := float64(elapsed) * tw.duration / float64(durationFrames)
		b := tw.begin[i]
		p.Set(tw.ease(t, b, p.End-b, tw.duration))
	}
}
