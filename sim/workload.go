// Workload loading. A workload file is a YAML document declaring the
// full, fixed process list for a run; declaration order fixes the
// initial FIFO admission order.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level workload file format.
// Loaded from YAML via LoadWorkload(path).
type WorkloadSpec struct {
	Processes []ProcessSpec `yaml:"processes"`
}

// ProcessSpec declares a single process and its burst list.
type ProcessSpec struct {
	ID       int       `yaml:"id"`
	Segments []Segment `yaml:"segments"`
}

// Build converts the spec into engine processes, in declaration order.
// Deep validation (positive durations, non-empty segment lists) is the
// engine's job at initialization; Build only rejects a workload that
// declares nothing at all.
func (ws *WorkloadSpec) Build() ([]*Process, error) {
	if len(ws.Processes) == 0 {
		return nil, fmt.Errorf("workload declares no processes")
	}
	procs := make([]*Process, 0, len(ws.Processes))
	for _, ps := range ws.Processes {
		procs = append(procs, NewProcess(ps.ID, ps.Segments))
	}
	return procs, nil
}

// LoadWorkload reads a YAML workload file and builds its process list.
func LoadWorkload(path string) ([]*Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload %s: %w", path, err)
	}
	return spec.Build()
}

// SampleWorkload returns the canonical three-process demo workload.
// It exercises CPU/IO overlap, queueing behind a busy resource, and
// processes of different segment counts.
func SampleWorkload() []*Process {
	return []*Process{
		NewProcess(1, []Segment{{Kind: KindCPU, Duration: 5}, {Kind: KindIO, Duration: 4}, {Kind: KindCPU, Duration: 3}}),
		NewProcess(2, []Segment{{Kind: KindCPU, Duration: 3}, {Kind: KindIO, Duration: 2}}),
		NewProcess(3, []Segment{{Kind: KindCPU, Duration: 4}}),
	}
}
