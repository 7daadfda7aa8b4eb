// Tracks simulation-wide statistics for final reporting.

package sim

import (
	"fmt"
	"sort"
)

// Metrics aggregates statistics about a finished run. Useful for
// evaluating workload schedules and debugging engine behavior.
type Metrics struct {
	CompletedProcesses int // Number of processes that reached terminal completion
	Makespan           int // Tick at which the last process completed

	CPUBusyTicks int // Ticks the CPU spent occupied
	IOBusyTicks  int // Ticks the IO controller spent occupied

	// CompletionTimes maps process ID to the tick the process was
	// dropped. All processes arrive at t=0, so this is also the
	// turnaround time.
	CompletionTimes map[int]int
}

// NewMetrics creates an empty Metrics ready for a run.
func NewMetrics() *Metrics {
	return &Metrics{CompletionTimes: make(map[int]int)}
}

// Utilization returns the fraction of the makespan a resource was busy.
func (m *Metrics) Utilization(resource ResourceKind) float64 {
	if m.Makespan == 0 {
		return 0
	}
	switch resource {
	case KindCPU:
		return float64(m.CPUBusyTicks) / float64(m.Makespan)
	case KindIO:
		return float64(m.IOBusyTicks) / float64(m.Makespan)
	default:
		return 0
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Processes : %d\n", m.CompletedProcesses)
	fmt.Printf("Makespan            : %d ticks\n", m.Makespan)
	fmt.Printf("CPU Utilization     : %.2f%% (%d busy ticks)\n", 100*m.Utilization(KindCPU), m.CPUBusyTicks)
	fmt.Printf("IO Utilization      : %.2f%% (%d busy ticks)\n", 100*m.Utilization(KindIO), m.IOBusyTicks)

	pids := make([]int, 0, len(m.CompletionTimes))
	for pid := range m.CompletionTimes {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	for _, pid := range pids {
		fmt.Printf("P%d turnaround      : %d ticks\n", pid, m.CompletionTimes[pid])
	}
}
