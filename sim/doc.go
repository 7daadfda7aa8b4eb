// Package sim provides the core tick-driven simulation engine for a
// batch-processing machine with one CPU and one IO controller.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Segment cursor and remaining-tick bookkeeping per process
//   - engine.go: The tick loop, completion handling, and FIFO admission
//   - event.go: The occupancy event log consumed by renderers
//
// # Architecture
//
// The sim package owns the data model and the engine; consumers live
// in sub-packages and in cmd/:
//   - sim/timeline/: start/end event pairing and text chart rendering
//
// Narration is routed through the Observer interface (observer.go);
// the engine itself never prints. Workloads are either constructed
// programmatically with NewProcess or loaded from YAML (workload.go).
package sim
