// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

// Add appends a member with the given key and value to o and returns the new
// member. The value must be a string, int, float, bool, nil, or ast.Value;
// Add panics otherwise. Members are appended in call order, and an existing
// member with the same key is not disturbed.
//
// Attaching an *Object or Array value transfers ownership of that subtree to
// o: the caller must not attach it elsewhere or edit it independently.
func (o *Object) Add(key string, value any) *Member {
	m := Field(key, value)
	o.Members = append(o.Members, m)
	return m
}

// Delete removes the first member matching key anywhere in o, searching in
// the same order as Get. Only the first occurrence of a duplicate key is
// removed. Delete reports success: deleting from an empty object, or a key
// that is absent everywhere, removes nothing and still returns true.
func (o *Object) Delete(key string) bool {
	o.remove(key)
	return true
}

// remove unlinks the first member matching key anywhere in o, and reports
// whether a member was removed.
func (o *Object) remove(key string) bool {
	if o == nil {
		return false
	}
	for i, m := range o.Members {
		if m.Key == key {
			o.Members = append(o.Members[:i], o.Members[i+1:]...)
			m.release()
			return true
		}
		if sub, ok := m.Value.(*Object); ok {
			if sub.remove(key) {
				return true
			}
		}
	}
	return false
}

// Release detaches every member of o, leaving it valid and empty. Nested
// objects are released recursively, including objects attached inside array
// values, so that no subtree remains reachable through o.
func (o *Object) Release() {
	if o == nil {
		return
	}
	for _, m := range o.Members {
		m.release()
	}
	o.Members = nil
}

func (m *Member) release() {
	releaseValue(m.Value)
	m.Value = nil
}

func releaseValue(v Value) {
	switch t := v.(type) {
	case *Object:
		t.Release()
	case Array:
		for i, elt := range t {
			releaseValue(elt)
			t[i] = nil
		}
	}
}
