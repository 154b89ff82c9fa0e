package app

import (
	"testing"

	"rotating-f/internal/anim"
	"rotating-f/internal/event"
	"rotating-f/pkg/path"
)

var window = anim.Viewport{Width: 700, Height: 600}

func TestRedrawSequence(t *testing.T) {
	tests := []struct {
		name  string
		steps func(r *Redraw)
		want  bool
	}{
		{"first frame", func(r *Redraw) {}, true},
		{"nothing happened", func(r *Redraw) { r.Take() }, false},
		{"request", func(r *Redraw) { r.Take(); r.Request() }, true},
		{"resize", func(r *Redraw) { r.Take(); r.Resize(anim.Viewport{Width: 800, Height: 600}) }, true},
		{"same size", func(r *Redraw) { r.Take(); r.Resize(window) }, false},
		{"draw clears request", func(r *Redraw) { r.Request(); r.Take() }, false},
		{"draw clears resize", func(r *Redraw) { r.Resize(anim.Viewport{}); r.Take() }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRedraw(window)
			tt.steps(r)
			if got := r.Take(); got != tt.want {
				t.Errorf("Take() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRedrawResizeReportsChange(t *testing.T) {
	r := NewRedraw(window)
	if r.Resize(window) {
		t.Error("Resize to the same viewport reported a change")
	}
	small := anim.Viewport{Width: 0, Height: 0}
	if !r.Resize(small) {
		t.Error("Resize to a new viewport reported no change")
	}
	if r.Viewport() != small {
		t.Errorf("Viewport() = %+v, want %+v", r.Viewport(), small)
	}
}

func TestTickRequestsRedraw(t *testing.T) {
	sched := NewTickScheduler(event.NewDispatcher())
	r := NewRedraw(window)
	sched.OnRedraw(r.Request)
	NewAnimation(path.Build(), sched)

	r.Take()
	if r.Take() {
		t.Fatal("redraw pending without a tick")
	}
	sched.Fire()
	if !r.Take() {
		t.Error("tick did not request a redraw")
	}
	if r.Take() {
		t.Error("redraw still pending after Take")
	}

	sched.Stop()
	sched.Fire()
	if r.Take() {
		t.Error("stopped scheduler requested a redraw")
	}
}
