package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWorkloadFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadWorkload_ParsesProcessesInDeclarationOrder(t *testing.T) {
	// GIVEN a workload file with two processes
	path := writeWorkloadFile(t, `
processes:
  - id: 1
    segments:
      - {kind: cpu, duration: 5}
      - {kind: io, duration: 4}
  - id: 2
    segments:
      - {kind: cpu, duration: 3}
`)

	// WHEN it is loaded
	procs, err := LoadWorkload(path)

	// THEN the process list mirrors the file, in order
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, 1, procs[0].ID)
	assert.Equal(t, []Segment{{Kind: KindCPU, Duration: 5}, {Kind: KindIO, Duration: 4}}, procs[0].Segments)
	assert.Equal(t, 2, procs[1].ID)
	assert.Equal(t, []Segment{{Kind: KindCPU, Duration: 3}}, procs[1].Segments)
}

func TestLoadWorkload_UnknownKind_Fails(t *testing.T) {
	path := writeWorkloadFile(t, `
processes:
  - id: 1
    segments:
      - {kind: gpu, duration: 5}
`)

	_, err := LoadWorkload(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpu")
}

func TestLoadWorkload_EmptyWorkload_Fails(t *testing.T) {
	path := writeWorkloadFile(t, "processes: []\n")

	_, err := LoadWorkload(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no processes")
}

func TestLoadWorkload_MissingFile_Fails(t *testing.T) {
	_, err := LoadWorkload(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadedWorkload_RunsThroughEngine(t *testing.T) {
	// GIVEN a loaded workload equivalent to the built-in sample
	path := writeWorkloadFile(t, `
processes:
  - id: 1
    segments:
      - {kind: cpu, duration: 5}
      - {kind: io, duration: 4}
      - {kind: cpu, duration: 3}
  - id: 2
    segments:
      - {kind: cpu, duration: 3}
      - {kind: io, duration: 2}
  - id: 3
    segments:
      - {kind: cpu, duration: 4}
`)
	procs, err := LoadWorkload(path)
	require.NoError(t, err)

	// WHEN both workloads are simulated
	fromFile := NewEngine(procs)
	require.NoError(t, fromFile.Run())
	builtin := NewEngine(SampleWorkload())
	require.NoError(t, builtin.Run())

	// THEN the runs are indistinguishable
	assert.Equal(t, builtin.Events(), fromFile.Events())
	assert.Equal(t, builtin.Clock, fromFile.Clock)
}

func TestSampleWorkload_ShapesMatchCanonicalDemo(t *testing.T) {
	procs := SampleWorkload()

	require.Len(t, procs, 3)
	assert.Equal(t, 3, len(procs[0].Segments))
	assert.Equal(t, 2, len(procs[1].Segments))
	assert.Equal(t, 1, len(procs[2].Segments))
}
