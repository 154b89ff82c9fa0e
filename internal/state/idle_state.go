// internal/state/idle_state.go
package state

import "log"

const IdleName = "idle"

// IdleState - начальная фаза до первого тика
type IdleState struct {
	sm   *StateMachine
	next State
}

// NewIdleState создаёт фазу ожидания; next становится текущей на первом тике.
func NewIdleState(sm *StateMachine, next State) *IdleState {
	return &IdleState{sm: sm, next: next}
}

func (s *IdleState) Name() string { return IdleName }

func (s *IdleState) Enter() {}

// Update переключает машину в следующую фазу и передаёт ей этот же тик,
// чтобы первый тик уже сдвинул анимацию.
func (s *IdleState) Update() {
	if s.next == nil {
		return
	}
	log.Printf("phase %s -> %s", s.Name(), s.next.Name())
	s.sm.SetState(s.next)
	s.next.Update()
}

func (s *IdleState) Exit() {}
