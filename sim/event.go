// Defines the occupancy Event record and the append-only EventLog the
// engine populates during a run. A renderer pairs start/end events
// sharing a (resource, process) key into occupancy intervals.

package sim

import "fmt"

// EventPhase marks whether an event opens or closes a resource occupancy.
type EventPhase int

const (
	PhaseStart EventPhase = iota
	PhaseEnd
)

// String returns the lower-case name of the phase.
func (ph EventPhase) String() string {
	switch ph {
	case PhaseStart:
		return "start"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("EventPhase(%d)", int(ph))
	}
}

// Event records one occupancy transition: a process starting on or
// leaving a resource at a given tick.
type Event struct {
	Resource  ResourceKind
	ProcessID int
	Phase     EventPhase
	Time      int
}

// This method returns a human-readable string representation of an Event.
func (e Event) String() string {
	return fmt.Sprintf("t=%d: %s %s P%d", e.Time, e.Resource, e.Phase, e.ProcessID)
}

// EventLog is the chronological, append-only record of occupancy
// events. For every (resource, process) key, each start is followed by
// exactly one matching end before that key starts again.
type EventLog struct {
	events []Event
}

// append adds an event to the log. Only the engine appends; consumers
// read through Events.
func (l *EventLog) append(e Event) {
	l.events = append(l.events, e)
}

// Events returns a copy of the log in emission order.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}
