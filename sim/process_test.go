package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess_CopiesSegmentList(t *testing.T) {
	// GIVEN a caller-owned segment slice
	segs := []Segment{{Kind: KindCPU, Duration: 3}}

	// WHEN a process is built from it and the caller mutates the slice
	p := NewProcess(1, segs)
	segs[0].Duration = 99

	// THEN the process keeps its own immutable copy
	assert.Equal(t, 3, p.Segments[0].Duration)
}

func TestStartNextSegment_LoadsRemainingWithoutMovingCursor(t *testing.T) {
	p := NewProcess(1, []Segment{{Kind: KindCPU, Duration: 5}, {Kind: KindIO, Duration: 2}})

	ok := p.StartNextSegment()

	assert.True(t, ok)
	assert.Equal(t, 5, p.Remaining)
	assert.Equal(t, 0, p.Cursor, "cursor must only advance on segment completion")
}

func TestStartNextSegment_PastLastSegment_IsNoOp(t *testing.T) {
	// GIVEN a process whose cursor has run off the end
	p := NewProcess(1, []Segment{{Kind: KindCPU, Duration: 2}})
	p.Cursor = 1
	p.Remaining = 0

	// WHEN StartNextSegment is called
	ok := p.StartNextSegment()

	// THEN it reports false and changes nothing
	assert.False(t, ok)
	assert.Equal(t, 0, p.Remaining)
	assert.Equal(t, 1, p.Cursor)
}

func TestIsComplete_TracksCursorAgainstSegmentCount(t *testing.T) {
	p := NewProcess(1, []Segment{{Kind: KindCPU, Duration: 1}, {Kind: KindIO, Duration: 1}})

	assert.False(t, p.IsComplete())
	p.Cursor = 1
	assert.False(t, p.IsComplete())
	p.Cursor = 2
	assert.True(t, p.IsComplete())
}

func TestCurrentSegment_ReturnsSegmentUnderCursor(t *testing.T) {
	p := NewProcess(1, []Segment{{Kind: KindCPU, Duration: 1}, {Kind: KindIO, Duration: 7}})
	p.Cursor = 1

	seg, ok := p.CurrentSegment()

	assert.True(t, ok)
	assert.Equal(t, KindIO, seg.Kind)
	assert.Equal(t, 7, seg.Duration)
}

func TestCurrentSegment_CompletedProcess_ReturnsFalse(t *testing.T) {
	p := NewProcess(1, []Segment{{Kind: KindCPU, Duration: 1}})
	p.Cursor = 1

	_, ok := p.CurrentSegment()

	assert.False(t, ok)
}
