package models

import "sort"

// OpLog is a room's ordered history of accepted operations plus the LIFO
// redo buffer feeding redo. It is not safe for concurrent use on its own;
// the owning Room serializes all access to it.
type OpLog struct {
	ops  []Operation
	redo []Operation
}

// NewOpLog creates an empty operation log.
func NewOpLog() *OpLog {
	return &OpLog{
		ops:  make([]Operation, 0),
		redo: make([]Operation, 0),
	}
}

// Append pushes a newly accepted operation onto the log tail and discards
// the redo buffer: drawing after an undo abandons the undone branch.
func (l *OpLog) Append(op Operation) {
	l.ops = append(l.ops, op)
	l.redo = l.redo[:0]
}

// Undo pops the most recent operation off the log onto the redo buffer and
// returns it, or nil if the log is empty.
func (l *OpLog) Undo() Operation {
	if len(l.ops) == 0 {
		return nil
	}
	op := l.ops[len(l.ops)-1]
	l.ops = l.ops[:len(l.ops)-1]
	l.redo = append(l.redo, op)
	return op
}

// Redo pops the most recently undone operation off the redo buffer back
// onto the log tail and returns it, or nil if there is nothing to redo.
// The rest of the redo buffer survives: this is a restore, not a new append.
// An operation that never carried a timestamp gets stamped with the current
// time each time it is restored.
func (l *OpLog) Redo() Operation {
	if len(l.redo) == 0 {
		return nil
	}
	op := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	if !op.HasTimestamp() {
		op.Stamp(Now())
	}
	l.ops = append(l.ops, op)
	return op
}

// Clear empties both the log and the redo buffer.
func (l *OpLog) Clear() {
	l.ops = l.ops[:0]
	l.redo = l.redo[:0]
}

// Snapshot returns a copy of the log sorted by ascending timestamp, ties
// broken by append order. This is the full-resync ordering sent on
// join/undo/redo/clear; live draw broadcasts keep arrival order instead.
func (l *OpLog) Snapshot() []Operation {
	out := make([]Operation, len(l.ops))
	copy(out, l.ops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp() < out[j].Timestamp()
	})
	return out
}

// Len returns the number of operations in the log.
func (l *OpLog) Len() int { return len(l.ops) }

// RedoLen returns the number of operations waiting in the redo buffer.
func (l *OpLog) RedoLen() int { return len(l.redo) }
