// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree model for JSON values, and a parser that
// constructs trees from JSON source held in memory.
package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota // no value; the kind of a nil Value
	KindObject              // an object: ordered key-value members
	KindArray               // an array of values
	KindString              // a string
	KindNumber              // a number
	KindBool                // a Boolean constant
	KindNull                // the null constant
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindObject:  "object",
	KindArray:   "array",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "bool",
	KindNull:    "null",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which variant of value this is.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	// String renders a human-readable summary of the value.
	String() string
}

// KindOf reports the kind of v. A nil Value is KindInvalid.
func KindOf(v Value) Kind {
	if v == nil {
		return KindInvalid
	}
	return v.Kind()
}

// An Object is an ordered collection of key-value members.  Member order is
// insertion order and is preserved by serialization; keys are not required to
// be unique.
type Object struct {
	Members []*Member
}

// Kind satisfies the Value interface.
func (o *Object) Kind() Kind { return KindObject }

// Find returns the first member of o with the given key, or nil.  Unlike Get,
// Find does not descend into nested objects.
func (o *Object) Find(key string) *Member {
	if o == nil {
		return nil
	}
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Members)
}

func (o *Object) JSON() string {
	if o.Len() == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o.Members[0].JSON())
	for _, m := range o.Members[1:] {
		sb.WriteString(", ")
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m *Member) JSON() string { return `"` + m.Key + `" : ` + JSON(m.Value) }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(JSON(a[0]))
	for _, v := range a[1:] {
		sb.WriteString(", ")
		sb.WriteString(JSON(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value. The text is stored verbatim as it appeared in
// the input, without the enclosing quotes; escape sequences are not decoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

func (s String) JSON() string { return `"` + string(s) + `"` }

func (s String) String() string { return string(s) }

func (s String) Len() int { return len(s) }

// A Number is a numeric value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// JSON renders n as an integer literal when the magnitude of its fractional
// part is below 1e-9, and otherwise as fixed-point with 4 decimal digits.
// Integer values outside the range of int64 are rendered in full precision,
// since converting them would not be well defined.
func (n Number) JSON() string {
	f := float64(n)
	if math.Abs(f-math.Trunc(f)) < 1e-9 {
		// MaxInt64 rounds up to 2^63 as a float64, so the upper bound is
		// exclusive to keep the conversion in range.
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func (n Number) String() string { return n.JSON() }

// Float reports the value of n as a float64.
func (n Number) Float() float64 { return float64(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) String() string { return b.JSON() }

// Value reports the truth value of b.
func (b Bool) Value() bool { return bool(b) }

// Null is the JSON null constant.
var Null nullValue

type nullValue struct{}

// Kind satisfies the Value interface.
func (nullValue) Kind() Kind { return KindNull }

func (nullValue) JSON() string { return "null" }

func (nullValue) String() string { return "null" }

// JSON renders v as compact JSON text. A nil Value has no JSON rendering and
// yields a diagnostic placeholder instead.
func JSON(v Value) string {
	if v == nil {
		return "<invalid>"
	}
	return v.JSON()
}

// ToValue converts a string, int, float, bool, nil, or ast.Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case bool:
		return Bool(t)
	case nil:
		return Null
	}
	panic(fmt.Sprintf("no value for %T", v))
}
