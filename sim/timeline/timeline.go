// Package timeline reconstructs resource occupancy intervals from the
// engine's event log and renders them as a fixed-width text chart.
// It is a pure consumer of the log: the engine has no dependency on it.
package timeline

import (
	"fmt"
	"sort"
	"strings"

	sim "github.com/batchsim/batchsim/sim"
)

// Interval is one [Start, End) span during which a process held a
// resource, reconstructed by pairing a start event with the next end
// event sharing its (resource, process) key.
type Interval struct {
	Resource  sim.ResourceKind
	ProcessID int
	Start     int
	End       int
}

type occupancyKey struct {
	resource sim.ResourceKind
	pid      int
}

// Build pairs start and end events in log order into occupancy
// intervals. It fails on a log that violates the engine's contract:
// a second start before the matching end, an end without a start, or
// a start that is never closed.
func Build(events []sim.Event) ([]Interval, error) {
	open := make(map[occupancyKey]int)
	intervals := make([]Interval, 0, len(events)/2)

	for _, ev := range events {
		k := occupancyKey{ev.Resource, ev.ProcessID}
		switch ev.Phase {
		case sim.PhaseStart:
			if _, dup := open[k]; dup {
				return nil, fmt.Errorf("P%d started on %s at t=%d before its previous occupancy ended", ev.ProcessID, ev.Resource, ev.Time)
			}
			open[k] = ev.Time
		case sim.PhaseEnd:
			start, ok := open[k]
			if !ok {
				return nil, fmt.Errorf("P%d ended on %s at t=%d without a matching start", ev.ProcessID, ev.Resource, ev.Time)
			}
			delete(open, k)
			intervals = append(intervals, Interval{
				Resource:  ev.Resource,
				ProcessID: ev.ProcessID,
				Start:     start,
				End:       ev.Time,
			})
		}
	}

	if len(open) > 0 {
		keys := make([]occupancyKey, 0, len(open))
		for k := range open {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].resource != keys[j].resource {
				return keys[i].resource < keys[j].resource
			}
			return keys[i].pid < keys[j].pid
		})
		k := keys[0]
		return nil, fmt.Errorf("P%d occupancy on %s starting at t=%d was never ended", k.pid, k.resource, open[k])
	}
	return intervals, nil
}

// Render draws one row per (resource, process) pair that ever held the
// resource, one column per tick, with '#' marking occupied ticks.
func Render(intervals []Interval) string {
	if len(intervals) == 0 {
		return ""
	}

	makespan := 0
	rows := make(map[occupancyKey][]Interval)
	for _, iv := range intervals {
		if iv.End > makespan {
			makespan = iv.End
		}
		k := occupancyKey{iv.Resource, iv.ProcessID}
		rows[k] = append(rows[k], iv)
	}

	keys := make([]occupancyKey, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].resource != keys[j].resource {
			return keys[i].resource < keys[j].resource
		}
		return keys[i].pid < keys[j].pid
	})

	var sb strings.Builder
	sb.WriteString(ruler(makespan))
	for _, k := range keys {
		cells := make([]byte, makespan)
		for i := range cells {
			cells[i] = ' '
		}
		for _, iv := range rows[k] {
			for t := iv.Start; t < iv.End; t++ {
				cells[t] = '#'
			}
		}
		sb.WriteString(fmt.Sprintf("%-3s P%-3d |%s|\n", k.resource, k.pid, string(cells)))
	}
	return sb.String()
}

// ruler renders the header row with a tick mark every five columns.
func ruler(makespan int) string {
	cells := make([]byte, makespan)
	for i := range cells {
		if i%5 == 0 {
			cells[i] = '.'
		} else {
			cells[i] = ' '
		}
	}
	return fmt.Sprintf("%-8s |%s| t=%d\n", "", string(cells), makespan)
}
