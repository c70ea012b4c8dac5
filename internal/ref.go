package internal

// Ref is a single tracked value.
// Every Set notifies, even when the value is unchanged.
type Ref struct {
	rt    *Runtime
	value any
}

func (r *Runtime) NewRef(initial any) *Ref {
	return &Ref{
		rt:    r,
		value: initial,
	}
}

func (ref *Ref) Value() any {
	ref.rt.Track(ref, TrackGet, ValueKey)

	return ref.value
}

func (ref *Ref) Set(v any) {
	ref.value = v
	ref.rt.Trigger(ref, TriggerSet, ValueKey)
}
