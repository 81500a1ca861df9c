package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func op(kind string, ts float64) Operation {
	o := Operation{"type": kind}
	o.Stamp(ts)
	return o
}

func TestAppendClearsRedo(t *testing.T) {
	l := NewOpLog()
	l.Append(op("line", 1))
	l.Append(op("rect", 2))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.RedoLen())

	require.NotNil(t, l.Undo())
	assert.Equal(t, 1, l.RedoLen())

	// A new operation discards the undone branch entirely.
	l.Append(op("circle", 3))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.RedoLen())
	assert.Nil(t, l.Redo())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	l := NewOpLog()
	x := op("line", 1)
	y := op("rect", 2)
	l.Append(x)
	l.Append(y)

	popped := l.Undo()
	require.NotNil(t, popped)
	assert.Equal(t, y.Timestamp(), popped.Timestamp())
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.RedoLen())

	restored := l.Redo()
	require.NotNil(t, restored)
	assert.Equal(t, y.Timestamp(), restored.Timestamp())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.RedoLen())

	// Append order is restored too.
	snap := l.Snapshot()
	assert.Equal(t, x.Timestamp(), snap[0].Timestamp())
	assert.Equal(t, y.Timestamp(), snap[1].Timestamp())
}

func TestUndoEmptyLog(t *testing.T) {
	l := NewOpLog()
	assert.Nil(t, l.Undo())
	assert.Equal(t, 0, l.RedoLen())
}

func TestRedoEmptyBuffer(t *testing.T) {
	l := NewOpLog()
	l.Append(op("line", 1))
	assert.Nil(t, l.Redo())
	assert.Equal(t, 1, l.Len())
}

// Redoing consumes one entry and must not disturb the rest of the buffer.
func TestRedoKeepsRemainingBuffer(t *testing.T) {
	l := NewOpLog()
	l.Append(op("line", 1))
	l.Append(op("rect", 2))
	l.Append(op("circle", 3))
	l.Undo()
	l.Undo()
	assert.Equal(t, 2, l.RedoLen())

	require.NotNil(t, l.Redo())
	assert.Equal(t, 1, l.RedoLen())
	assert.Equal(t, 2, l.Len())
}

func TestRedoBackfillsMissingTimestamp(t *testing.T) {
	l := NewOpLog()
	unstamped := Operation{"type": "line"}
	l.ops = append(l.ops, unstamped) // arrived without a timestamp
	l.Undo()

	before := Now()
	restored := l.Redo()
	require.NotNil(t, restored)
	assert.True(t, restored.HasTimestamp())
	assert.GreaterOrEqual(t, restored.Timestamp(), before)
}

func TestClear(t *testing.T) {
	l := NewOpLog()
	for i := 0; i < 5; i++ {
		l.Append(op("line", float64(i)))
	}
	l.Undo()
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.RedoLen())
}

func TestSnapshotSortsByTimestamp(t *testing.T) {
	l := NewOpLog()
	l.Append(op("line", 30))
	l.Append(op("rect", 10))
	l.Append(op("circle", 20))

	snap := l.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, 10.0, snap[0].Timestamp())
	assert.Equal(t, 20.0, snap[1].Timestamp())
	assert.Equal(t, 30.0, snap[2].Timestamp())

	// Internal append order is untouched.
	assert.Equal(t, 30.0, l.ops[0].Timestamp())
}

func TestSnapshotStableOnTies(t *testing.T) {
	l := NewOpLog()
	a := Operation{"type": "line", "seq": 1}
	b := Operation{"type": "rect", "seq": 2}
	a.Stamp(5)
	b.Stamp(5)
	l.Append(a)
	l.Append(b)

	snap := l.Snapshot()
	assert.Equal(t, 1, snap[0]["seq"])
	assert.Equal(t, 2, snap[1]["seq"])
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewOpLog()
	l.Append(op("line", 1))
	snap := l.Snapshot()
	snap[0] = op("rect", 99)
	assert.Equal(t, "line", l.ops[0].Kind())
}

func TestSnapshotEmptyLogIsNotNil(t *testing.T) {
	l := NewOpLog()
	assert.NotNil(t, l.Snapshot())
	assert.Len(t, l.Snapshot(), 0)
}
