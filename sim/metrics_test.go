package sim

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Utilization_FractionOfMakespan(t *testing.T) {
	m := NewMetrics()
	m.Makespan = 10
	m.CPUBusyTicks = 10
	m.IOBusyTicks = 4

	assert.InDelta(t, 1.0, m.Utilization(KindCPU), 1e-9)
	assert.InDelta(t, 0.4, m.Utilization(KindIO), 1e-9)
}

func TestMetrics_Utilization_ZeroMakespan_IsZero(t *testing.T) {
	m := NewMetrics()
	assert.Equal(t, 0.0, m.Utilization(KindCPU))
}

func TestMetrics_PopulatedByRun(t *testing.T) {
	engine := NewEngine(SampleWorkload())
	require.NoError(t, engine.Run())

	m := engine.Metrics
	assert.Equal(t, 3, m.CompletedProcesses)
	assert.Equal(t, 15, m.Makespan)
	// Completion order from the golden schedule: P2 at 11, P3 at 12, P1 at 15
	assert.Equal(t, map[int]int{1: 15, 2: 11, 3: 12}, m.CompletionTimes)
}

func TestMetrics_Print_WritesSummaryToStdout(t *testing.T) {
	// GIVEN metrics from a finished run
	engine := NewEngine(SampleWorkload())
	require.NoError(t, engine.Run())

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN Print is called
	engine.Metrics.Print()

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the summary lines appear
	assert.Contains(t, output, "Simulation Metrics")
	assert.Contains(t, output, "Makespan            : 15 ticks")
	assert.Contains(t, output, "Completed Processes : 3")
}
