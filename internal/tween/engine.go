package tween

// Engine owns a list of tweens and advances them together.
type Engine struct {
	fps       int
	overwrite bool
	tweens    []*Tween

	// OnUpdate, when set, runs after each tween's update.
	OnUpdate func(*Tween)
}

// NewEngine creates an engine ticking at fps. With overwrite set, adding a
// tween replaces any running tween on the same target.
func NewEngine(fps int, overwrite bool) *Engine {
	if fps <= 0 {
		fps = 60
	}
	return &Engine{fps: fps, overwrite: overwrite}
}

// FPS returns the frame rate new tweens are created with.
func (e *Engine) FPS() int { return e.fps }

// To animates target's properties from their current values to End.
func (e *Engine) To(target any, duration float64, props []Prop, ease Ease) *Tween {
	return e.Add(New(target, e.fps, duration, props, ease), false)
}

// From sets the properties to End immediately and animates them back to
// the values they held before the call.
func (e *Engine) From(target any, duration float64, props []Prop, ease Ease) *Tween {
	back := make([]Prop, len(props))
	for i, p := range props {
		back[i] = p
		if p.Get != nil {
			back[i].End = p.Get()
		}
		if p.Set != nil {
			p.Set(p.End)
		}
	}
	return e.To(target, duration, back, ease)
}

// Add registers a tween. If overwrite (or the engine's overwrite flag) is
// set, the first tween with the same target is replaced in place.
func (e *Engine) Add(tw *Tween, overwrite bool) *Tween {
	if overwrite || e.overwrite {
		for i, cur := range e.tweens {
			if cur.Target == tw.Target {
				e.tweens[i] = tw
				return tw
			}
		}
	}
	e.tweens = append(e.tweens, tw)
	return tw
}

// Remove drops a tween, optionally jumping it to its end values first.
func (e *Engine) Remove(tw *Tween, jumpToEnd bool) {
	for i := len(e.tweens) - 1; i >= 0; i-- {
		if e.tweens[i] != tw {
			continue
		}
		if jumpToEnd {
			tw.Kill()
		}
		e.tweens = append(e.tweens[:i], e.tweens[i+1:]...)
	}
}

// Kill drops every tween, optionally jumping each to its end values.
func (e *Engine) Kill(jumpToEnd bool) {
	for i := len(e.tweens) - 1; i >= 0; i-- {
		if jumpToEnd {
			e.tweens[i].Kill()
		}
	}
	e.tweens = nil
}

// Active returns the number of running tweens.
func (e *Engine) Active() int { return len(e.tweens) }

// Update advances every tween one frame, newest first, and removes the
// ones that completed.
func (e *Engine) Update() {
	for i := len(e.tweens) - 1; i >= 0; i-- {
		if i >= len(e.tweens) {
			continue
		}
		tw := e.tweens[i]
		tw.Update()
		if e.OnUpdate != nil {
			e.OnUpdate(tw)
		}
		if tw.Complete() && i < len(e.tweens) && e.tweens[i] == tw {
			e.tweens = append(e.tweens[:i], e.tweens[i+1:]...)
		}
	}
}
