// internal/state/animating_state.go
package state

import "rotating-f/internal/anim"

const AnimatingName = "animating"

// AnimatingState - бесконечная фаза: каждый тик сдвигает угол и индекс.
// Конечного состояния нет.
type AnimatingState struct {
	sm      *StateMachine
	st      *anim.State
	pathLen int
}

func NewAnimatingState(sm *StateMachine, st *anim.State, pathLen int) *AnimatingState {
	return &AnimatingState{sm: sm, st: st, pathLen: pathLen}
}

func (s *AnimatingState) Name() string { return AnimatingName }

func (s *AnimatingState) Enter() {}

func (s *AnimatingState) Update() {
	*s.st = s.st.Advance(s.pathLen)
}

func (s *AnimatingState) Exit() {}
