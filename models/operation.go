package models

import (
	"log"
	"time"
)

// Operation is one drawing action as received from a client. It is kept as
// an open bag of JSON fields: clients may attach fields the server does not
// know about, and they must survive the round trip back out untouched.
type Operation map[string]any

// Kind returns the operation's declared kind, or "" if absent or not a string.
func (op Operation) Kind() string {
	k, _ := op[FieldKind].(string)
	return k
}

// HasTimestamp reports whether the operation carries a timestamp field.
func (op Operation) HasTimestamp() bool {
	_, ok := op[FieldTimestamp]
	return ok
}

// Timestamp returns the operation's timestamp in seconds since epoch.
// A missing or non-numeric timestamp reads as 0, which sorts first.
func (op Operation) Timestamp() float64 {
	switch t := op[FieldTimestamp].(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	}
	return 0
}

// Stamp sets the operation's timestamp.
func (op Operation) Stamp(seconds float64) {
	op[FieldTimestamp] = seconds
}

// Now returns the current time in seconds since epoch with sub-second
// precision, the unit operations are timestamped in.
func Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// Valid checks a candidate operation's shape against its declared kind's
// required fields. Checks are structural only: a field merely has to be
// present, its value is not type- or range-checked.
func (op Operation) Valid() bool {
	switch kind := op.Kind(); kind {
	case KindLine:
		// A line is either a straight segment or a freehand pen stroke.
		if op.has("start", "end", "color", "thickness") || op.has("points", "color", "size") {
			return true
		}
		log.Printf("validation failed: line missing required fields")
		return false
	case KindRect:
		if op.has("start", "end", "color", "thickness") {
			return true
		}
		log.Printf("validation failed: rect missing required fields")
		return false
	case KindCircle:
		if op.has("center", "radius", "color", "thickness") {
			return true
		}
		log.Printf("validation failed: circle missing required fields")
		return false
	case KindText:
		if op.has("position", "text", "color", "size") {
			return true
		}
		log.Printf("validation failed: text missing required fields")
		return false
	case KindImage:
		if op.has("position", "src", "width", "height") {
			return true
		}
		log.Printf("validation failed: image missing required fields")
		return false
	default:
		log.Printf("validation failed: unknown operation kind %q", kind)
		return false
	}
}

func (op Operation) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := op[k]; !ok {
			return false
		}
	}
	return true
}
