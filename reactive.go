package reactive

import "github.com/AnatoleLucet/reactive/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type (
	// Runtime is one independent reactive graph. It is not safe for concurrent use.
	Runtime       = internal.Runtime
	RuntimeOption = internal.RuntimeOption

	// Effect is a computation re-run whenever tracked state it read changes.
	Effect = internal.Effect

	// Object is a tracked map[string]any.
	Object = internal.Object
	// Array is a tracked *[]any.
	Array = internal.Array

	// Key addresses a field: Name, Index or IterateKey.
	Key       = internal.Key
	TrackOp   = internal.TrackOp
	TriggerOp = internal.TriggerOp

	// Queue coalesces effect re-runs while batching.
	Queue = internal.Queue
)

const (
	TrackGet     = internal.TrackGet
	TrackHas     = internal.TrackHas
	TrackIterate = internal.TrackIterate

	TriggerSet    = internal.TriggerSet
	TriggerAdd    = internal.TriggerAdd
	TriggerDelete = internal.TriggerDelete
)

var (
	IterateKey = internal.IterateKey
	LengthKey  = internal.LengthKey
)

func Name(name string) Key { return internal.Name(name) }

func Index(i int) Key { return internal.Index(i) }

// NewRuntime creates a standalone runtime, for hosts that manage their own graphs.
func NewRuntime(opts ...RuntimeOption) *Runtime { return internal.NewRuntime(opts...) }

// WithWarnFunc routes non-fatal warnings (glog by default).
func WithWarnFunc(fn func(format string, args ...any)) RuntimeOption {
	return internal.WithWarnFunc(fn)
}

// Default returns the calling goroutine's runtime.
func Default() *Runtime { return internal.GetRuntime() }

// DropDefault forgets the calling goroutine's runtime, the next Default call starts a new graph.
func DropDefault() { internal.DropRuntime() }

// Reactive wraps a map[string]any or *[]any so reads are tracked and writes notify.
// Wrapping is idempotent. Any other value is returned unchanged.
func Reactive(v any) any { return Default().Wrap(v) }

// ReactiveObject is Reactive for maps. It returns nil for a nil map.
func ReactiveObject(m map[string]any) *Object { return Default().WrapObject(m) }

// ReactiveArray is Reactive for slices. It returns nil for a nil pointer.
func ReactiveArray(items *[]any) *Array { return Default().WrapArray(items) }

// ToRaw returns the container a wrapper was built from, without tracking.
func ToRaw(v any) any { return internal.ToRaw(v) }

type EffectOption func(*internal.EffectOptions)

// Lazy skips the initial run; call Effect.Run to start it.
func Lazy() EffectOption {
	return func(o *internal.EffectOptions) { o.Lazy = true }
}

// WithScheduler hands invalidated effects to fn instead of re-running them.
func WithScheduler(fn func(*Effect)) EffectOption {
	return func(o *internal.EffectOptions) { o.Scheduler = fn }
}

// NewEffect creates a reactive effect that runs the given function
// whenever its dependencies change.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	return NewEffectIn(Default(), fn, opts...)
}

func NewEffectIn(rt *Runtime, fn func(), opts ...EffectOption) *Effect {
	var o internal.EffectOptions
	for _, opt := range opts {
		opt(&o)
	}

	return rt.NewEffect(func() any {
		fn()
		return nil
	}, o)
}

// Dispose permanently unsubscribes an effect.
func Dispose(e *Effect) { e.Dispose() }

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a read-only derived value, computed lazily and cached
// until one of its dependencies changes.
func NewComputed[T any](getter func() T) *Computed[T] {
	return NewComputedIn(Default(), getter)
}

func NewComputedIn[T any](rt *Runtime, getter func() T) *Computed[T] {
	return &Computed[T]{
		rt.NewComputed(func() any { return getter() }, nil),
	}
}

// NewWritableComputed creates a derived value whose Set calls setter.
func NewWritableComputed[T any](getter func() T, setter func(T)) *Computed[T] {
	return NewWritableComputedIn(Default(), getter, setter)
}

func NewWritableComputedIn[T any](rt *Runtime, getter func() T, setter func(T)) *Computed[T] {
	return &Computed[T]{
		rt.NewComputed(
			func() any { return getter() },
			func(v any) { setter(as[T](v)) },
		),
	}
}

// Value returns the cached value, recomputing it first if stale.
func (c *Computed[T]) Value() T {
	return as[T](c.computed.Value())
}

// Set calls the setter. On a read-only value it only logs a warning.
func (c *Computed[T]) Set(v T) {
	c.computed.Set(v)
}

func (c *Computed[T]) Effect() *Effect {
	return c.computed.Effect()
}

type Ref[T any] struct {
	ref *internal.Ref
}

// NewRef creates a single tracked value.
func NewRef[T any](initial T) *Ref[T] {
	return NewRefIn(Default(), initial)
}

func NewRefIn[T any](rt *Runtime, initial T) *Ref[T] {
	return &Ref[T]{rt.NewRef(initial)}
}

func (r *Ref[T]) Value() T {
	return as[T](r.ref.Value())
}

// Set stores v and notifies dependents, even if v equals the current value.
func (r *Ref[T]) Set(v T) {
	r.ref.Set(v)
}

// Track records that the active effect read key of target.
// Maps, slices and funcs are tracked by pointer, other non-comparable targets are ignored.
func Track(target any, op TrackOp, key Key) {
	Default().Track(target, op, key)
}

// Trigger notifies the effects a write of kind op to key of target invalidates.
func Trigger(target any, op TriggerOp, key Key) {
	Default().Trigger(target, op, key)
}

// PauseTracking stops recording reads until the matching ResumeTracking.
// Pauses nest.
func PauseTracking() { Default().PauseTracking() }

func ResumeTracking() { Default().ResumeTracking() }

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	Default().Untrack(func() { result = fn() })
	return result
}

// NewQueue creates a batching scheduler. Pass q.Enqueue to WithScheduler.
func NewQueue() *Queue { return internal.NewQueue() }
