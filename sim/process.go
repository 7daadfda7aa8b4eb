// Defines the Process struct that models an individual batch job in
// the simulation. Tracks the segment cursor and remaining ticks of the
// active segment.

package sim

import (
	"fmt"
)

// Process models a single batch job: an ordered, immutable sequence of
// CPU and IO segments plus the engine-driven progress through them.
// A process is a pure data holder; the engine is the sole mutator of
// Cursor and Remaining for the duration of a run.
type Process struct {
	ID int // Unique identifier for the process

	Segments []Segment // Ordered burst list; treated as immutable after construction

	// Cursor indexes the active segment. It is monotonically
	// non-decreasing; Cursor == len(Segments) marks terminal
	// completion.
	Cursor int

	// Remaining is the number of ticks left in the active segment.
	// Meaningful only while the process occupies a resource or is
	// about to.
	Remaining int
}

// NewProcess creates a process with its own copy of the segment list.
func NewProcess(id int, segments []Segment) *Process {
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return &Process{ID: id, Segments: segs}
}

// StartNextSegment loads the duration of the segment under the cursor
// into Remaining. It returns false when the cursor is already past the
// last segment. The cursor itself never moves here; it advances only
// when a segment completes.
func (p *Process) StartNextSegment() bool {
	if p.Cursor >= len(p.Segments) {
		return false
	}
	p.Remaining = p.Segments[p.Cursor].Duration
	return true
}

// IsComplete reports whether the process has finished every segment.
func (p *Process) IsComplete() bool {
	return p.Cursor >= len(p.Segments)
}

// CurrentSegment returns the segment under the cursor.
// The second return value is false for a completed process.
func (p *Process) CurrentSegment() (Segment, bool) {
	if p.Cursor >= len(p.Segments) {
		return Segment{}, false
	}
	return p.Segments[p.Cursor], true
}

// This method returns a human-readable string representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, Cursor: %d/%d, Remaining: %d)", p.ID, p.Cursor, len(p.Segments), p.Remaining)
}
