package tween

import (
	"math"
	"testing"
)

type point struct{ X, Y float64 }

func xProp(p *point, end float64) Prop {
	return Prop{
		Get: func() float64 { return p.X },
		Set: func(v float64) { p.X = v },
		End: end,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFrameCounts(t *testing.T) {
	tests := []struct {
		name         string
		fps          int
		duration     float64
		delay        float64
		wantDuration int
		wantDelay    int
		wantTotal    int
	}{
		{"whole frames", 10, 0.5, 0, 5, 0, 5},
		{"rounds up", 60, 0.11, 0, 7, 0, 7},
		{"with delay", 10, 0.5, 0.2, 5, 2, 7},
		{"zero duration", 60, 0, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := New(&point{}, tc.fps, tc.duration, nil, Linear).WithDelay(tc.delay)
			if got := tw.DurationFrames(); got != tc.wantDuration {
				t.Errorf("DurationFrames() = %d, want %d", got, tc.wantDuration)
			}
			if got := tw.DelayFrames(); got != tc.wantDelay {
				t.Errorf("DelayFrames() = %d, want %d", got, tc.wantDelay)
			}
			if got := tw.TotalFrames(); got != tc.wantTotal {
				t.Errorf("TotalFrames() = %d, want %d", got, tc.wantTotal)
			}
		})
	}
}

func TestLinearTweenValues(t *testing.T) {
	p := &point{}
	tw := New(p, 10, 0.5, []Prop{xProp(p, 10)}, Linear)

	// The fourth frame is the last interpolated one and snaps to End.
	want := []float64{2, 4, 6, 10, 10}
	for i, w := range want {
		tw.Update()
		if !approx(p.X, w) {
			t.Errorf("frame %d: X = %v, want %v", i+1, p.X, w)
		}
	}
	if !tw.Complete() {
		t.Error("tween should be complete after TotalFrames updates")
	}
}

func TestTweenCallbacks(t *testing.T) {
	p := &point{}
	var starts, updates, completes int
	tw := New(p, 10, 0.5, []Prop{xProp(p, 1)}, nil)
	tw.OnStart = func(*Tween) { starts++ }
	tw.OnUpdate = func(*Tween) { updates++ }
	tw.OnComplete = func(*Tween) { completes++ }

	for i := 0; i < 10; i++ {
		tw.Update()
	}

	if starts != 1 || updates != 4 || completes != 1 {
		t.Errorf("callbacks start=%d update=%d complete=%d, want 1 4 1", starts, updates, completes)
	}
}

func TestTweenDelayCapturesBeginLate(t *testing.T) {
	p := &point{X: 5}
	tw := New(p, 10, 0.5, []Prop{xProp(p, 10)}, Linear).WithDelay(0.2)

	tw.Update()
	if tw.Started() {
		t.Fatal("tween should still be delayed after one frame")
	}
	p.X = 0 // changed during the delay; the tween must start from here

	tw.Update()
	if !tw.Started() {
		t.Fatal("tween should start after the delay")
	}
	if !approx(p.X, 0) {
		t.Errorf("first started frame X = %v, want 0", p.X)
	}

	for !tw.Complete() {
		tw.Update()
	}
	if !approx(p.X, 10) {
		t.Errorf("final X = %v, want 10", p.X)
	}
}

func TestTweenKill(t *testing.T) {
	p := &point{}
	completes := 0
	tw := New(p, 60, 1, []Prop{xProp(p, 42)}, nil)
	tw.OnComplete = func(*Tween) { completes++ }

	tw.Kill()
	if !approx(p.X, 42) {
		t.Errorf("Kill() left X = %v, want 42", p.X)
	}
	if !tw.Complete() {
		t.Error("killed tween should be complete")
	}

	tw.Update()
	tw.Kill()
	if completes != 1 {
		t.Errorf("OnComplete ran %d times, want 1", completes)
	}
}

func TestTweenReset(t *testing.T) {
	p := &point{}
	tw := New(p, 10, 0.2, []Prop{xProp(p, 4)}, Linear)
	tw.Kill()

	p.X = 2
	tw.Reset()
	if tw.Complete() || tw.Frame() != 0 {
		t.Fatal("Reset should rewind the tween")
	}
	tw.Update()
	tw.Update()
	if !approx(p.X, 4) {
		t.Errorf("X after rerun = %v, want 4", p.X)
	}
}

func TestEasesHitEndpoints(t *testing.T) {
	eases := map[string]Ease{
		"linear":    Linear,
		"quadIn":    QuadEaseIn,
		"quadOut":   QuadEaseOut,
		"quadInOut": QuadEaseInOut,
	}
	for name, ease := range eases {
		t.Run(name, func(t *testing.T) {
			if got := ease(0, 3, 7, 2); !approx(got, 3) {
				t.Errorf("ease(0) = %v, want 3", got)
			}
			if got := ease(2, 3, 7, 2); !approx(got, 10) {
				t.Errorf("ease(d) = %v, want 10", got)
			}
		})
	}
}
