package element

import (
	"trellis/pkg/geom"
	"trellis/pkg/ident"
)

// EventType identifies a kind of input event.
type EventType int

const (
	Click EventType = iota
	Press
	Release
	Move
	Wheel
)

var eventNames = map[EventType]string{
	Click:   "click",
	Press:   "press",
	Release: "release",
	Move:    "move",
	Wheel:   "wheel",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseEventType maps an event name, as used in on-<event> attributes, to
// its type.
func ParseEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Event is an input event in canvas coordinates.
type Event struct {
	Type     EventType
	Position geom.Position

	// DeltaX and DeltaY are wheel deltas as fractions of the scroll
	// range. Positive values scroll right and down.
	DeltaX float64
	DeltaY float64

	// Consumed is set once a scroll container has applied the wheel delta.
	Consumed bool
}

// Command is an application-level message produced by input handling and
// reduced by the nearest enclosing component.
type Command struct {
	Name    string
	Payload any

	// Source is the element whose on-<event> attribute produced the
	// command, or zero for commands dispatched programmatically.
	Source ident.ID
}
