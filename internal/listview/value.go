package listview

import (
	"strings"
	"time"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindString
	kindNumber
	kindBool
	kindTime
)

// Value is the closed comparable representation every sort key resolves to.
// Accessor tables guarantee that a given key always yields the same kind,
// so mixed-kind comparisons never happen in practice.
type Value struct {
	kind valueKind
	str  string
	num  float64
	b    bool
	t    time.Time
}

func Null() Value                { return Value{kind: kindNull} }
func String(s string) Value      { return Value{kind: kindString, str: s} }
func Number(n float64) Value     { return Value{kind: kindNumber, num: n} }
func Bool(b bool) Value          { return Value{kind: kindBool, b: b} }
func Time(t time.Time) Value     { return Value{kind: kindTime, t: t} }

func StringPtr(s *string) Value {
	if s == nil {
		return Null()
	}
	return String(*s)
}

func NumberPtr(n *float64) Value {
	if n == nil {
		return Null()
	}
	return Number(*n)
}

func IntPtr(n *int) Value {
	if n == nil {
		return Null()
	}
	return Number(float64(*n))
}

func TimePtr(t *time.Time) Value {
	if t == nil {
		return Null()
	}
	return Time(*t)
}

func (v Value) IsNull() bool { return v.kind == kindNull }

// compare orders two defined values: -1, 0 or 1. Strings compare
// lexicographically, booleans as 0/1, times chronologically.
func compare(a, b Value) int {
	switch a.kind {
	case kindString:
		return strings.Compare(a.str, b.str)
	case kindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case kindBool:
		switch {
		case !a.b && b.b:
			return -1
		case a.b && !b.b:
			return 1
		}
		return 0
	case kindTime:
		switch {
		case a.t.Before(b.t):
			return -1
		case a.t.After(b.t):
			return 1
		}
		return 0
	}
	return 0
}
