package event

const (
	Tick            EventType = "Tick"            // Сработал таймер
	RedrawRequested EventType = "RedrawRequested" // Нужна перерисовка кадра
	TickerStopped   EventType = "TickerStopped"   // Таймер остановлен, тиков больше не будет
)
