package internal

import (
	"math"
	"reflect"
)

// HasChanged reports whether a write of next over prev is observable.
// Reference kinds compare by identity, and two NaNs count as unchanged.
func HasChanged(prev, next any) bool {
	return !sameValue(prev, next) && !(isNaN(prev) && isNaN(next))
}

// sameValue is strict identity: NaN differs from itself.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	if va.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	return false
}

func sameValueZero(a, b any) bool {
	return sameValue(a, b) || (isNaN(a) && isNaN(b))
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	case nil:
		return false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return math.IsNaN(rv.Float())
	}

	return false
}
