package sim

import "fmt"

// ConfigError reports an invalid workload definition. It is detected
// during engine initialization, before the first tick executes, so a
// bad workload never produces a partial event log.
type ConfigError struct {
	ProcessID int
	Reason    string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid workload: process %d: %s", e.ProcessID, e.Reason)
}

// InvariantError reports a fatal defect in the engine itself, such as
// a negative remaining-tick count or a run that fails to reach the
// terminal state. It is never user-recoverable.
type InvariantError struct {
	Reason string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("engine invariant violated: %s", e.Reason)
}
