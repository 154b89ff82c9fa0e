// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - событие цикла анимации
type Event struct {
	Type EventType
	Data interface{}
}

// Handler обрабатывает одно событие.
type Handler func(Event)

// Dispatcher рассылает события обработчикам в порядке подписки. Все вызовы
// идут из потока, владеющего окном, блокировок нет.
type Dispatcher struct {
	handlers map[EventType][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]Handler)}
}

// On подписывает h на события типа t. nil игнорируется.
func (d *Dispatcher) On(t EventType, h Handler) {
	if h == nil {
		return
	}
	d.handlers[t] = append(d.handlers[t], h)
}

// Dispatch вызывает обработчиков, подписанных на e.Type до начала рассылки,
// и возвращает их число. Подписка изнутри обработчика вступает в силу со
// следующего события.
func (d *Dispatcher) Dispatch(e Event) int {
	hs := d.handlers[e.Type]
	for _, h := range hs {
		h(e)
	}
	return len(hs)
}

// Emit - сокращение для Dispatch(Event{Type: t}).
func (d *Dispatcher) Emit(t EventType) int {
	return d.Dispatch(Event{Type: t})
}
