package internal

import (
	"github.com/golang/glog"
)

// Runtime owns one reactive graph: its dependency store, effect stack,
// pause depth and wrapper cache.
// A Runtime is not safe for concurrent use.
type Runtime struct {
	store   *DepStore
	tracker *Tracker

	// raw container identity -> wrapper
	// entries live as long as the runtime unless released
	wrappers map[uintptr]Tracked

	warnf func(format string, args ...any)
}

type RuntimeOption func(*Runtime)

// WithWarnFunc sets where non-fatal warnings go (glog by default).
func WithWarnFunc(fn func(format string, args ...any)) RuntimeOption {
	return func(r *Runtime) {
		r.warnf = fn
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		store:    NewDepStore(),
		tracker:  NewTracker(),
		wrappers: make(map[uintptr]Tracked),
		warnf:    glog.Warningf,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runtime) Store() *DepStore { return r.store }

// ActiveEffect returns the effect currently executing, or nil.
func (r *Runtime) ActiveEffect() *Effect {
	return r.tracker.Active()
}

// Track records that the active effect read key of target.
func (r *Runtime) Track(target any, op TrackOp, key Key) {
	if !r.tracker.ShouldTrack() {
		return
	}

	if op == TrackIterate {
		key = IterateKey
	}

	r.tracker.Active().subscribe(r.store.resolve(target, key, op))
}

// Trigger notifies every effect that a write of kind op to key of target invalidates.
func (r *Runtime) Trigger(target any, op TriggerOp, key Key) {
	effects := r.store.collect(target, op, key)
	if len(effects) == 0 {
		return
	}

	if glog.V(2) {
		glog.Infof("[trigger]%s %s on %T (%d effects)\n", op, key, target, len(effects))
	}

	active := r.tracker.Active()
	for _, e := range effects {
		// an effect writing what it reads must not re-enter itself
		if e == active || e.disposed {
			continue
		}

		if glog.V(2) {
			glog.Infof("[trigger]%s notify effect %s\n", key, e.id)
		}

		e.notify()
	}
}

func (r *Runtime) PauseTracking() {
	r.tracker.Pause()
}

func (r *Runtime) ResumeTracking() {
	r.tracker.Resume()
}

func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// Release drops the wrapper cached for a raw container (or wrapper) and all of its
// dependency sets. Wrapping the container again yields a fresh wrapper.
func (r *Runtime) Release(v any) {
	id, ok := identityOf(ToRaw(v))
	if !ok {
		return
	}

	w, ok := r.wrappers[id]
	if !ok {
		return
	}

	delete(r.wrappers, id)
	r.store.forget(w.core())
}
