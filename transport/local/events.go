package local

// EventType identifies a bus lifecycle event.
type EventType uint8

const (
	EventAdvertised EventType = iota
	EventUnadvertised
	EventSubscribed
	EventUnsubscribed
)

func (t EventType) String() string {
	switch t {
	case EventAdvertised:
		return "advertised"
	case EventUnadvertised:
		return "unadvertised"
	case EventSubscribed:
		return "subscribed"
	case EventUnsubscribed:
		return "unsubscribed"
	default:
		return "unknown"
	}
}

// Event describes one advertisement or subscription change.
type Event struct {
	Topic    string
	Handle   uint32
	Instance uint32
	Type     EventType
}

// Observer receives bus lifecycle events. Observers are called with the bus
// lock held and must not call back into the bus.
type Observer interface {
	OnBusEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnBusEvent calls f(e).
func (f ObserverFunc) OnBusEvent(e Event) { f(e) }
