// Narration of engine activity. The observer is purely informational:
// simulation results are identical whatever observer is attached, and
// the default discards everything.

package sim

import "github.com/sirupsen/logrus"

// Observer receives human-readable narration of scheduling actions as
// they happen. Implementations must not mutate engine state.
type Observer interface {
	// ResourceStarted fires when a process is admitted into a resource.
	ResourceStarted(tick int, resource ResourceKind, pid int)
	// SegmentCompleted fires when a process finishes its active segment.
	SegmentCompleted(tick int, resource ResourceKind, pid int)
	// ProcessCompleted fires when a process finishes its last segment.
	ProcessCompleted(tick int, pid int)
	// ResourceReleased fires when a resource becomes idle again.
	ResourceReleased(tick int, resource ResourceKind, pid int)
}

// NopObserver discards all narration. It is the engine default.
type NopObserver struct{}

func (NopObserver) ResourceStarted(int, ResourceKind, int)  {}
func (NopObserver) SegmentCompleted(int, ResourceKind, int) {}
func (NopObserver) ProcessCompleted(int, int)               {}
func (NopObserver) ResourceReleased(int, ResourceKind, int) {}

// LogrusObserver narrates scheduling actions through logrus at Info
// level, one line per action.
type LogrusObserver struct{}

func (LogrusObserver) ResourceStarted(tick int, resource ResourceKind, pid int) {
	logrus.Infof("[tick %04d] %s starts P%d", tick, resource, pid)
}

func (LogrusObserver) SegmentCompleted(tick int, resource ResourceKind, pid int) {
	logrus.Infof("[tick %04d] P%d %s segment done", tick, pid, resource)
}

func (LogrusObserver) ProcessCompleted(tick int, pid int) {
	logrus.Infof("[tick %04d] P%d completed", tick, pid)
}

func (LogrusObserver) ResourceReleased(tick int, resource ResourceKind, pid int) {
	logrus.Infof("[tick %04d] %s released P%d", tick, resource, pid)
}
