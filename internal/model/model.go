// Package model provides the shared record types produced by the loader.
package model

import "github.com/valyala/fastjson"

// LevelUnknown is the bucket for records without a usable level field.
const LevelUnknown = "UNKNOWN"

// Record holds one decoded JSON value from a log line. Records are not
// required to be objects; the loader accepts any valid JSON value.
type Record struct {
	value *fastjson.Value
}

// NewRecord wraps a decoded JSON value.
func NewRecord(v *fastjson.Value) Record {
	return Record{value: v}
}

// Value returns the underlying decoded JSON value.
func (r Record) Value() *fastjson.Value {
	return r.value
}

// IsObject reports whether the record decoded as a JSON object.
func (r Record) IsObject() bool {
	return r.value != nil && r.value.Type() == fastjson.TypeObject
}

// Level returns the record's "level" field as a display string.
// Non-object records and objects without a level key fall back to
// LevelUnknown. A string level is returned verbatim; any other value is
// rendered as its JSON representation.
func (r Record) Level() string {
	if !r.IsObject() {
		return LevelUnknown
	}

	lv := r.value.Get("level")
	if lv == nil {
		return LevelUnknown
	}

	if lv.Type() == fastjson.TypeString {
		return string(lv.GetStringBytes())
	}
	return lv.String()
}

// Collection is an ordered sequence of records, in input line order.
type Collection []Record
