// Implements the FIFO process queues feeding the two resources.
// Processes are enqueued when they become eligible for a resource and
// dequeued from the front on admission.

package sim

import (
	"fmt"
	"strings"
)

// ProcessQueue is a FIFO queue of processes waiting for one resource.
// The engine keeps one for the CPU (the ready queue) and one for the
// IO controller. Queue discipline is strict first-in-first-out:
// admission always takes the oldest arrival.
type ProcessQueue struct {
	queue []*Process // FIFO queue of processes
}

// Enqueue adds a process to the back of the queue.
func (q *ProcessQueue) Enqueue(p *Process) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (q *ProcessQueue) Dequeue() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	head := q.queue[0]
	q.queue = q.queue[1:]
	return head
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *ProcessQueue) Peek() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of processes in the queue.
func (q *ProcessQueue) Len() int {
	return len(q.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within
// the sim package may iterate over it but MUST NOT append to or
// reslice it.
func (q *ProcessQueue) Items() []*Process {
	return q.queue
}

func (q *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.queue {
		sb.WriteString(fmt.Sprintf("P%d", p.ID))
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
