// engine.go
//
// The scheduling engine: a batch-processing machine with one CPU and
// one IO controller. The engine admits queued processes into idle
// resources under FIFO discipline and advances simulated time in
// discrete integer ticks, recording every occupancy transition in the
// event log.

package sim

import "fmt"

// Engine is the core object that holds simulation time, system state,
// and the tick loop. It is constructed from a fixed workload and
// exclusively owns every process reference for the duration of a run:
// a process lives in at most one of {ReadyQueue, IOQueue, CPUBusy,
// IOBusy} at any time, and is dropped once its last segment completes.
type Engine struct {
	// Clock is the current simulated time in ticks. After Run returns
	// it holds the makespan.
	Clock int

	// ReadyQueue holds processes waiting for the CPU; IOQueue holds
	// processes waiting for the IO controller. Both are strict FIFO.
	ReadyQueue *ProcessQueue
	IOQueue    *ProcessQueue

	// CPUBusy and IOBusy are the single-slot resource holders. Each
	// resource serves exactly one process at a time: IDLE (nil) ->
	// BUSY(process) -> IDLE, one transition pair per occupancy.
	CPUBusy *Process
	IOBusy  *Process

	// Log is the append-only record of start/end occupancy events.
	Log *EventLog

	Metrics *Metrics

	// Observer narrates scheduling actions. Swappable; defaults to
	// NopObserver and has no effect on simulation results.
	Observer Observer

	workload []*Process

	// maxTicks bounds the run at one tick more than the sum of all
	// segment durations. Every tick past the first consumes at least
	// one remaining unit, so exceeding the bound means the terminal
	// state is unreachable.
	maxTicks int
}

// NewEngine creates an engine over the given workload. The workload is
// fixed for the run: no processes arrive after initialization.
func NewEngine(workload []*Process) *Engine {
	return &Engine{
		ReadyQueue: &ProcessQueue{},
		IOQueue:    &ProcessQueue{},
		Log:        &EventLog{},
		Metrics:    NewMetrics(),
		Observer:   NopObserver{},
		workload:   workload,
	}
}

// initialize validates the workload, loads each process's first
// segment, and seeds the ready queue in workload order. That order
// fixes the initial FIFO admission order.
func (e *Engine) initialize() error {
	seen := make(map[int]bool, len(e.workload))
	for _, p := range e.workload {
		if len(p.Segments) == 0 {
			return ConfigError{ProcessID: p.ID, Reason: "no segments"}
		}
		if seen[p.ID] {
			return ConfigError{ProcessID: p.ID, Reason: "duplicate process ID"}
		}
		seen[p.ID] = true
		for i, seg := range p.Segments {
			if seg.Duration <= 0 {
				return ConfigError{ProcessID: p.ID, Reason: fmt.Sprintf("segment %d has non-positive duration %d", i, seg.Duration)}
			}
			switch seg.Kind {
			case KindCPU, KindIO:
			default:
				return ConfigError{ProcessID: p.ID, Reason: fmt.Sprintf("segment %d has unknown resource kind %d", i, int(seg.Kind))}
			}
			e.maxTicks += seg.Duration
		}
	}
	e.maxTicks++

	for _, p := range e.workload {
		p.StartNextSegment()
		e.ReadyQueue.Enqueue(p)
	}
	return nil
}

// tick advances the simulation by one time unit, in fixed order:
// CPU completion handling, IO completion handling, admission (CPU
// first, then IO), clock advance. A process freed from one resource
// this tick passes through its target queue and may therefore be
// admitted to a resource within the same tick, behind any processes
// already waiting there.
func (e *Engine) tick() error {
	if err := e.advanceBusy(KindCPU, &e.CPUBusy); err != nil {
		return err
	}
	if err := e.advanceBusy(KindIO, &e.IOBusy); err != nil {
		return err
	}

	e.admit(KindCPU, &e.CPUBusy, e.ReadyQueue)
	e.admit(KindIO, &e.IOBusy, e.IOQueue)

	// The clock stops on the terminal tick so it reads as the
	// timestamp of the final end event: the makespan.
	if e.active() {
		e.Clock++
	}
	return nil
}

// advanceBusy runs the process occupying a resource for one time unit.
// When the active segment completes, the process is routed onward (or
// dropped), an end event is emitted, and the resource goes idle.
func (e *Engine) advanceBusy(resource ResourceKind, slot **Process) error {
	p := *slot
	if p == nil {
		return nil
	}

	p.Remaining--
	switch resource {
	case KindCPU:
		e.Metrics.CPUBusyTicks++
	case KindIO:
		e.Metrics.IOBusyTicks++
	}

	if p.Remaining > 0 {
		return nil
	}
	if p.Remaining < 0 {
		return InvariantError{Reason: fmt.Sprintf("process %d remaining went negative on %s", p.ID, resource)}
	}

	e.completeSegment(p, resource)
	e.Log.append(Event{Resource: resource, ProcessID: p.ID, Phase: PhaseEnd, Time: e.Clock})
	e.Observer.ResourceReleased(e.Clock, resource, p.ID)
	*slot = nil
	return nil
}

// completeSegment advances the cursor past the finished segment and
// routes the process to the queue of its next segment's kind, or drops
// it when no segments remain.
func (e *Engine) completeSegment(p *Process, resource ResourceKind) {
	e.Observer.SegmentCompleted(e.Clock, resource, p.ID)
	p.Cursor++

	if p.IsComplete() {
		e.Metrics.CompletedProcesses++
		e.Metrics.CompletionTimes[p.ID] = e.Clock
		e.Observer.ProcessCompleted(e.Clock, p.ID)
		return
	}

	p.StartNextSegment()
	switch p.Segments[p.Cursor].Kind {
	case KindIO:
		e.IOQueue.Enqueue(p)
	case KindCPU:
		e.ReadyQueue.Enqueue(p)
	}
}

// admit moves the oldest waiting process into an idle resource slot
// and emits a start event. Admission only pulls from queues.
func (e *Engine) admit(resource ResourceKind, slot **Process, queue *ProcessQueue) {
	if *slot != nil || queue.Len() == 0 {
		return
	}
	p := queue.Dequeue()
	*slot = p
	e.Log.append(Event{Resource: resource, ProcessID: p.ID, Phase: PhaseStart, Time: e.Clock})
	e.Observer.ResourceStarted(e.Clock, resource, p.ID)
}

// active reports whether any process still waits for or occupies a
// resource. The negation is the simulation's terminal condition.
func (e *Engine) active() bool {
	return e.ReadyQueue.Len() > 0 || e.IOQueue.Len() > 0 || e.CPUBusy != nil || e.IOBusy != nil
}

// Run drives the simulation from initialization to the terminal state:
// both queues empty and both resources idle. On return the clock holds
// the makespan and the event log is complete. The run aborts with a
// ConfigError before the first tick if the workload is invalid, or
// with an InvariantError on an internal defect.
func (e *Engine) Run() error {
	if err := e.initialize(); err != nil {
		return err
	}

	ticks := 0
	for e.active() {
		if ticks > e.maxTicks {
			return InvariantError{Reason: fmt.Sprintf("terminal state not reached after %d ticks", ticks)}
		}
		if err := e.tick(); err != nil {
			return err
		}
		ticks++
	}

	e.Metrics.Makespan = e.Clock
	return nil
}

// Events returns the chronological occupancy record of the run so far.
func (e *Engine) Events() []Event {
	return e.Log.Events()
}
