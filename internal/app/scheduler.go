// internal/app/scheduler.go
package app

import "rotating-f/internal/event"

// Scheduler отделяет логику анимации от конкретного цикла событий.
type Scheduler interface {
	OnTick(fn func())
	RequestRedraw()
}

// TickScheduler реализует Scheduler поверх event.Dispatcher. Fire вызывается
// из цикла обновления окна (раз в TickInterval), подписчики на
// RedrawRequested получают запрос перерисовки.
type TickScheduler struct {
	dispatcher *event.Dispatcher
	stopped    bool
}

func NewTickScheduler(d *event.Dispatcher) *TickScheduler {
	if d == nil {
		d = event.NewDispatcher()
	}
	return &TickScheduler{dispatcher: d}
}

// OnTick подписывает fn на каждый тик.
func (s *TickScheduler) OnTick(fn func()) {
	s.dispatcher.On(event.Tick, func(event.Event) { fn() })
}

// OnRedraw подписывает fn на запросы перерисовки.
func (s *TickScheduler) OnRedraw(fn func()) {
	s.dispatcher.On(event.RedrawRequested, func(event.Event) { fn() })
}

// RequestRedraw сообщает, что кадр устарел.
func (s *TickScheduler) RequestRedraw() {
	if s.stopped {
		return
	}
	s.dispatcher.Emit(event.RedrawRequested)
}

// Fire доставляет один тик. После Stop ничего не делает.
func (s *TickScheduler) Fire() {
	if s.stopped {
		return
	}
	s.dispatcher.Emit(event.Tick)
}

// Stop останавливает таймер: будущие тики и запросы перерисовки отбрасываются.
func (s *TickScheduler) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.dispatcher.Emit(event.TickerStopped)
}

// Stopped reports whether Stop was called.
func (s *TickScheduler) Stopped() bool {
	return s.stopped
}
