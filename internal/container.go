package internal

import (
	"maps"
	"reflect"
	"slices"
)

// Container is the raw key/value capability set the interception layer wraps.
type Container interface {
	// Load returns the value stored under key.
	Load(key Key) (any, bool)

	// Store assigns value to key. It returns false if the container rejects the write.
	Store(key Key, value any) bool

	// Owns reports whether key is an own field of the container.
	Owns(key Key) bool

	// Keys enumerates the own fields.
	Keys() []Key

	// Remove deletes key. It returns false if the key cannot be removed.
	Remove(key Key) bool

	// Len returns the length of ordered sequences, ok is false for records.
	Len() (n int, ok bool)
}

// recordContainer backs record-like state with a map[string]any.
// Only named keys are addressable. Keys enumerate in sorted order.
type recordContainer map[string]any

func (c recordContainer) Load(key Key) (any, bool) {
	if !key.IsName() {
		return nil, false
	}

	v, ok := c[key.name]
	return v, ok
}

func (c recordContainer) Store(key Key, value any) bool {
	if c == nil || !key.IsName() {
		return false
	}

	c[key.name] = value
	return true
}

func (c recordContainer) Owns(key Key) bool {
	if !key.IsName() {
		return false
	}

	_, ok := c[key.name]
	return ok
}

func (c recordContainer) Keys() []Key {
	names := slices.Sorted(maps.Keys(c))

	keys := make([]Key, len(names))
	for i, name := range names {
		keys[i] = Name(name)
	}

	return keys
}

func (c recordContainer) Remove(key Key) bool {
	if c == nil || !key.IsName() {
		return false
	}

	delete(c, key.name)
	return true
}

func (c recordContainer) Len() (int, bool) {
	return len(c), false
}

// sequenceContainer backs ordered state with a *[]any so appends stay visible
// through the same identity.
//
// Writing index len appends, writing past it pads with nil. Writing LengthKey
// truncates or pads. Removing an index clears it to nil and keeps the length.
type sequenceContainer struct {
	items *[]any
}

func (c sequenceContainer) Load(key Key) (any, bool) {
	s := *c.items

	switch {
	case key == LengthKey:
		return len(s), true
	case c.inRange(key):
		return s[key.index], true
	}

	return nil, false
}

func (c sequenceContainer) Store(key Key, value any) bool {
	switch {
	case key == LengthKey:
		n, ok := toLength(value)
		if !ok {
			return false
		}
		c.resize(n)
		return true

	case key.IsIndex() && key.index >= 0:
		if key.index >= len(*c.items) {
			c.resize(key.index + 1)
		}
		(*c.items)[key.index] = value
		return true
	}

	return false
}

func (c sequenceContainer) resize(n int) {
	s := *c.items

	if n < len(s) {
		clear(s[n:])
		*c.items = s[:n]
		return
	}

	*c.items = append(s, make([]any, n-len(s))...)
}

func (c sequenceContainer) Owns(key Key) bool {
	if key == LengthKey {
		return true
	}

	return c.inRange(key)
}

func (c sequenceContainer) inRange(key Key) bool {
	return key.IsIndex() && key.index >= 0 && key.index < len(*c.items)
}

func (c sequenceContainer) Keys() []Key {
	keys := make([]Key, len(*c.items))
	for i := range keys {
		keys[i] = Index(i)
	}

	return keys
}

func (c sequenceContainer) Remove(key Key) bool {
	switch {
	case key == LengthKey:
		return false
	case c.inRange(key):
		(*c.items)[key.index] = nil
	}

	return true
}

func (c sequenceContainer) Len() (int, bool) {
	return len(*c.items), true
}

func toLength(v any) (int, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return int(n), n >= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return int(f), f >= 0 && f == float64(int(f))
	}

	return 0, false
}

// identityOf returns the identity of a trackable raw container.
func identityOf(v any) (uintptr, bool) {
	switch c := v.(type) {
	case map[string]any:
		if c == nil {
			return 0, false
		}
		return reflect.ValueOf(c).Pointer(), true
	case *[]any:
		if c == nil {
			return 0, false
		}
		return reflect.ValueOf(c).Pointer(), true
	}

	return 0, false
}
