package game

type EventType int

const (
	EventGameOver EventType = iota
	EventObstacleCleared
	EventObstacleSpawned
)

type Event struct {
	Type  EventType
	Slot  int // Pool index of the obstacle involved.
	Score int // Score after the event.
}

type EventHandler func(Event)

// EventBus fans simulation events out to subscribers synchronously, on the
// goroutine that is stepping the simulation.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
