// internal/anim/state.go
package anim

import (
	"rotating-f/internal/config"
	"rotating-f/internal/utils"
)

// State - изменяемое состояние анимации: угол поворота маленькой "F" в
// градусах [0,360) и индекс текущей точки пути [0, len(path)).
// Нулевое значение является начальным состоянием.
type State struct {
	Angle     float64
	PathIndex int
}

// Advance возвращает состояние после одного тика.
func (s State) Advance(pathLen int) State {
	return State{
		Angle:     utils.NormalizeDegrees(s.Angle + config.AngleStep),
		PathIndex: utils.WrapIndex(s.PathIndex+1, pathLen),
	}
}

// AdvanceN applies n ticks.
func (s State) AdvanceN(n, pathLen int) State {
	for i := 0; i < n; i++ {
		s = s.Advance(pathLen)
	}
	return s
}
