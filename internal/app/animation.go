// internal/app/animation.go
package app

import (
	"rotating-f/internal/anim"
	"rotating-f/internal/state"
	"rotating-f/pkg/path"
)

// Animation - контроллер: владеет путём, состоянием анимации и машиной фаз.
// Тик пишет состояние, Frame его читает; оба вызываются из одного потока.
type Animation struct {
	path      path.Path
	state     anim.State
	phases    *state.StateMachine
	scheduler Scheduler
	ticks     int
}

// NewAnimation создаёт контроллер в фазе idle и подписывает его на тики.
func NewAnimation(p path.Path, sched Scheduler) *Animation {
	a := &Animation{
		path:      p,
		phases:    state.NewStateMachine(),
		scheduler: sched,
	}
	animating := state.NewAnimatingState(a.phases, &a.state, p.Len())
	a.phases.SetState(state.NewIdleState(a.phases, animating))
	sched.OnTick(a.tick)
	return a
}

func (a *Animation) tick() {
	a.phases.Update()
	a.ticks++
	a.scheduler.RequestRedraw()
}

// Ticks returns how many ticks were handled.
func (a *Animation) Ticks() int {
	return a.ticks
}

// State возвращает копию текущего состояния.
func (a *Animation) State() anim.State {
	return a.state
}

// Phase returns "idle" before the first tick and "animating" afterwards.
func (a *Animation) Phase() string {
	return a.phases.Current().Name()
}

// Frame composes the current frame for the given viewport.
func (a *Animation) Frame(vp anim.Viewport, gm anim.GlyphMetrics) anim.Frame {
	return anim.Compose(a.state, a.path, vp, gm)
}
