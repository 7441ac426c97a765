// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

// Get returns the value of the first member of o matching key, searching
// depth-first and left-to-right. At each member an exact key match wins
// immediately; otherwise, if the member's value is a nested object, that
// object is searched before any later sibling at the same level.
//
// A key that is absent everywhere yields nil (KindInvalid); this is a normal
// outcome, not an error.
func (o *Object) Get(key string) Value {
	if o == nil {
		return nil
	}
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value
		}
		if sub, ok := m.Value.(*Object); ok {
			if v := sub.Get(key); v != nil {
				return v
			}
		}
	}
	return nil
}

// ArrayLen reports the number of elements of v. If v is not an array it
// reports the sentinel -1.
func ArrayLen(v Value) int {
	arr, ok := v.(Array)
	if !ok {
		return -1
	}
	return len(arr)
}

// ArrayAt returns the element of v at index i, or nil if v is not an array
// or i is out of range.
func ArrayAt(v Value, i int) Value {
	arr, ok := v.(Array)
	if !ok || i < 0 || i >= len(arr) {
		return nil
	}
	return arr[i]
}
