package internal

import "slices"

// Includes reports whether the array holds v. NaN matches NaN.
func (a *Array) Includes(v any) bool {
	if a.indexOf(v, sameValueZero) != -1 {
		return true
	}

	return slices.IndexFunc(a.Raw(), func(e any) bool { return sameValueZero(e, v) }) != -1
}

func (a *Array) IndexOf(v any) int {
	if i := a.indexOf(v, sameValue); i != -1 {
		return i
	}

	return slices.IndexFunc(a.Raw(), func(e any) bool { return sameValue(e, v) })
}

func (a *Array) LastIndexOf(v any) int {
	if i := a.lastIndexOf(v); i != -1 {
		return i
	}

	raw := a.Raw()
	for i := len(raw) - 1; i >= 0; i-- {
		if sameValue(raw[i], v) {
			return i
		}
	}

	return -1
}

// indexOf searches through the wrapper, so elements come back wrapped.
// A raw argument can miss a wrapped element, callers then retry on the raw slice.
func (a *Array) indexOf(v any, eq func(a, b any) bool) int {
	n := a.Len()
	for i := 0; i < n; i++ {
		if eq(a.Get(i), v) {
			return i
		}
	}

	return -1
}

func (a *Array) lastIndexOf(v any) int {
	for i := a.Len() - 1; i >= 0; i-- {
		if sameValue(a.Get(i), v) {
			return i
		}
	}

	return -1
}

// Push appends items and returns the new length.
func (a *Array) Push(items ...any) int {
	n := len(*a.items)
	a.Splice(n, 0, items...)

	return n + len(items)
}

// Pop removes and returns the last element, nil when empty.
func (a *Array) Pop() any {
	n := len(*a.items)
	if n == 0 {
		return nil
	}

	return a.Splice(n-1, 1)[0]
}

// Shift removes and returns the first element, nil when empty.
func (a *Array) Shift() any {
	if len(*a.items) == 0 {
		return nil
	}

	return a.Splice(0, 1)[0]
}

// Unshift prepends items and returns the new length.
func (a *Array) Unshift(items ...any) int {
	a.Splice(0, 0, items...)

	return len(*a.items)
}

// Splice removes deleteCount elements from start, inserts items in their place and
// returns the removed elements. A negative start counts from the end.
//
// Tracking is paused for the whole call: the internal length and element reads
// must not subscribe the calling effect. Writes still notify subscribers.
func (a *Array) Splice(start, deleteCount int, items ...any) []any {
	a.rt.PauseTracking()
	defer a.rt.ResumeTracking()

	raw := *a.items
	n := len(raw)

	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	deleteCount = min(max(deleteCount, 0), n-start)

	removed := make([]any, deleteCount)
	for i, v := range raw[start : start+deleteCount] {
		removed[i] = a.rt.Wrap(v)
	}

	next := make([]any, 0, n-deleteCount+len(items))
	next = append(next, raw[:start]...)
	for _, item := range items {
		next = append(next, ToRaw(item))
	}
	next = append(next, raw[start+deleteCount:]...)

	// write through the interception layer so subscribers see each change
	for i := start; i < len(next); i++ {
		a.set(Index(i), next[i])
	}

	if len(next) < n {
		a.set(LengthKey, len(next))
	}

	return removed
}
